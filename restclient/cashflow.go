// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

// Cashflows lists all cashflows.
func (c *Client) Cashflows(ctx context.Context) (restdata.Value, error) {
	return c.GetJSON(ctx, "/cashflows")
}

// CreateCashflow records a cashflow.
func (c *Client) CreateCashflow(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/cashflows", payload)
}

// Cashflow retrieves a single cashflow.  The back office requires the
// "_" query parameter; it is passed through as underscore and omitted
// if empty.
func (c *Client) Cashflow(ctx context.Context, id, underscore string) (restdata.Value, error) {
	return c.getFrom(ctx, "/cashflows/{cashflow_id}{?_}", map[string]interface{}{
		"cashflow_id": id,
		"_":           underscore,
	})
}

// CashflowAnalytic retrieves the projected cashflow analysis as of a
// date.
func (c *Client) CashflowAnalytic(ctx context.Context, asOfDate string) (restdata.Value, error) {
	return c.getFrom(ctx, "/cashflow/analytic{?as_of_date}", map[string]interface{}{"as_of_date": asOfDate})
}

// BaselineSnapshot retrieves the cashflow baseline snapshot as of a
// date.
func (c *Client) BaselineSnapshot(ctx context.Context, asOfDate string) (restdata.Value, error) {
	return c.getFrom(ctx, "/cashflow/baseline/snapshots{?as_of_date}", map[string]interface{}{"as_of_date": asOfDate})
}

// CreateBaselineSnapshot freezes a cashflow baseline.
func (c *Client) CreateBaselineSnapshot(ctx context.Context, payload interface{}) (restdata.Value, error) {
	return c.PostJSON(ctx, "/cashflow/baseline/snapshots", payload)
}

// SettleContract records the settlement of a hedge contract in the
// cashflow ledger.
func (c *Client) SettleContract(ctx context.Context, contractID string, payload interface{}) (restdata.Value, error) {
	return c.postTo(ctx, "/cashflow/contracts/{contract_id}/settle", map[string]interface{}{
		"contract_id": contractID,
	}, payload)
}

// LedgerByEvent lists the ledger entries produced by one source event.
func (c *Client) LedgerByEvent(ctx context.Context, sourceEventID, sourceEventType string) (restdata.Value, error) {
	return c.getFrom(ctx, "/cashflow/ledger{?source_event_id,source_event_type}", map[string]interface{}{
		"source_event_id":   sourceEventID,
		"source_event_type": sourceEventType,
	})
}

// LedgerForContract lists the ledger entries of a hedge contract,
// optionally limited to a date range.
func (c *Client) LedgerForContract(ctx context.Context, contractID, start, end string) (restdata.Value, error) {
	return c.getFrom(ctx, "/cashflow/ledger/hedge-contracts/{contract_id}{?start,end}", map[string]interface{}{
		"contract_id": contractID,
		"start":       start,
		"end":         end,
	})
}
