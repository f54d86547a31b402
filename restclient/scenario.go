// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// RunWhatIf runs a what-if scenario.  Nothing is persisted.
func (c *Client) RunWhatIf(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/scenario/what-if/run", payload)
}
