// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// PL retrieves profit and loss for one entity over a period.
func (c *Client) PL(ctx context.Context, entityType, entityID, periodStart, periodEnd string) (restdata.Value, error) {
	return c.getFrom(ctx, "/pl/{entity_type}/{entity_id}{?period_start,period_end}", map[string]interface{}{
		"entity_type":  entityType,
		"entity_id":    entityID,
		"period_start": periodStart,
		"period_end":   periodEnd,
	})
}

// PLSnapshot retrieves a stored profit and loss snapshot.
func (c *Client) PLSnapshot(ctx context.Context, entityType, entityID, periodStart, periodEnd string) (restdata.Value, error) {
	return c.getFrom(ctx, "/pl/snapshots{?entity_type,entity_id,period_start,period_end}", map[string]interface{}{
		"entity_type":  entityType,
		"entity_id":    entityID,
		"period_start": periodStart,
		"period_end":   periodEnd,
	})
}

// CreatePLSnapshot stores a profit and loss snapshot.
func (c *Client) CreatePLSnapshot(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/pl/snapshots", payload)
}
