// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// CreateHedgeContract books a hedge contract.
func (c *Client) CreateHedgeContract(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/contracts/hedge", payload)
}

// HedgeContract retrieves a hedge contract.
func (c *Client) HedgeContract(ctx context.Context, id string) (restdata.Value, error) {
	return c.getFrom(ctx, "/contracts/hedge/{contract_id}", map[string]interface{}{"contract_id": id})
}
