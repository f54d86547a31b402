// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// CreateSalesOrder creates a sales order from an arbitrary JSON
// payload.
func (c *Client) CreateSalesOrder(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/orders/sales", payload)
}

// CreatePurchaseOrder creates a purchase order from an arbitrary JSON
// payload.
func (c *Client) CreatePurchaseOrder(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/orders/purchase", payload)
}

// Order retrieves a single order of either kind.
func (c *Client) Order(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/orders/{order_id}", map[string]interface{}{"order_id": id})
}
