// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// CreateLinkage links a hedge contract to an order.
func (c *Client) CreateLinkage(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/linkages", payload)
}

// Linkage retrieves a linkage.
func (c *Client) Linkage(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/linkages/{linkage_id}", map[string]interface{}{"linkage_id": id})
}
