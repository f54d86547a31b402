// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// CommercialExposures retrieves the exposures arising from sales and
// purchase orders.
func (c *Client) CommercialExposures(ctx context.Context) (restdata.Value, error) {
	return c.GetJSON(ctx, "/exposures/commercial")
}

// GlobalExposures retrieves the net exposure position.
func (c *Client) GlobalExposures(ctx context.Context) (restdata.Value, error) {
	return c.GetJSON(ctx, "/exposures/global")
}
