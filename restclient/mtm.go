// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// MTMForHedgeContract retrieves the mark-to-market valuation of a
// hedge contract as of a date.
func (c *Client) MTMForHedgeContract(ctx context.Context, contractID, asOfDate string) (restdata.Value, error) {
	return c.getFrom(ctx, "/mtm/hedge-contracts/{contract_id}{?as_of_date}", map[string]interface{}{
		"contract_id": contractID,
		"as_of_date":  asOfDate,
	})
}

// MTMForOrder retrieves the mark-to-market valuation of an order as of
// a date.
func (c *Client) MTMForOrder(ctx context.Context, orderID, asOfDate string) (restdata.Value, error) {
	return c.getFrom(ctx, "/mtm/orders/{order_id}{?as_of_date}", map[string]interface{}{
		"order_id":   orderID,
		"as_of_date": asOfDate,
	})
}

// MTMSnapshot retrieves a stored mark-to-market snapshot.
func (c *Client) MTMSnapshot(ctx context.Context, objectType, objectID, asOfDate string) (restdata.Value, error) {
	return c.getFrom(ctx, "/mtm/snapshots{?object_type,object_id,as_of_date}", map[string]interface{}{
		"object_type": objectType,
		"object_id":   objectID,
		"as_of_date":  asOfDate,
	})
}
