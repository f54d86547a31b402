// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// IngestWestmetallCashSettlement loads Westmetall aluminum cash
// settlement prices.
func (c *Client) IngestWestmetallCashSettlement(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/market-data/westmetall/aluminum/cash-settlement/ingest", payload)
}
