// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/gorilla/mux"
)

// SettlementEventType is the source_event_type of ledger entries
// produced by settling a hedge contract.
const SettlementEventType = "hedge_contract_settlement"

// PopulateCashflows adds the cashflow, baseline, and ledger routes.
func (api *restAPI) PopulateCashflows(r *mux.Router) {
	api.handle(r, "/cashflows", "cashflows", &resourceHandler{
		Get:  api.CashflowsGet,
		Post: api.CashflowPost,
	})
	api.handle(r, "/cashflows/{cashflow_id}", "cashflow", &resourceHandler{
		Get: api.CashflowGet,
	})
	api.handle(r, "/cashflow/analytic", "cashflowAnalytic", &resourceHandler{
		Get: api.CashflowAnalyticGet,
	})
	api.handle(r, "/cashflow/baseline/snapshots", "baselineSnapshots", &resourceHandler{
		Get:  api.BaselineSnapshotGet,
		Post: api.BaselineSnapshotPost,
	})
	api.handle(r, "/cashflow/contracts/{contract_id}/settle", "settleContract", &resourceHandler{
		Post: api.SettlePost,
	})
	api.handle(r, "/cashflow/ledger", "ledger", &resourceHandler{
		Get: api.LedgerGet,
	})
	api.handle(r, "/cashflow/ledger/hedge-contracts/{contract_id}", "contractLedger", &resourceHandler{
		Get: api.ContractLedgerGet,
	})
}

func (api *restAPI) CashflowsGet(ctx *context) (interface{}, error) {
	return map[string]interface{}{
		"cashflows": api.State.List(KindCashflow, nil),
	}, nil
}

func (api *restAPI) CashflowPost(ctx *context, in Document) (interface{}, error) {
	doc := api.State.Create(KindCashflow, in)
	return api.created(doc, "cashflow", "cashflow_id")
}

// CashflowGet retrieves one cashflow.  The "_" query parameter is
// mandatory, as on the real back office.
func (api *restAPI) CashflowGet(ctx *context) (interface{}, error) {
	if _, err := ctx.RequireParams("_"); err != nil {
		return nil, err
	}
	return api.State.Get(KindCashflow, ctx.Vars["cashflow_id"])
}

// CashflowAnalyticGet lists the cashflows with a value_date on or
// before as_of_date.  Cashflows without a value_date are included.
func (api *restAPI) CashflowAnalyticGet(ctx *context) (interface{}, error) {
	params, err := ctx.RequireParams("as_of_date")
	if err != nil {
		return nil, err
	}
	asOf := params[0]
	return map[string]interface{}{
		"as_of_date": asOf,
		"cashflows": api.State.List(KindCashflow, func(doc Document) bool {
			date := doc.String("value_date")
			return date == "" || date <= asOf
		}),
	}, nil
}

// BaselineSnapshotGet returns the most recent baseline snapshot for
// as_of_date.
func (api *restAPI) BaselineSnapshotGet(ctx *context) (interface{}, error) {
	params, err := ctx.RequireParams("as_of_date")
	if err != nil {
		return nil, err
	}
	snapshots := api.State.List(KindBaselineSnapshot, func(doc Document) bool {
		return doc.String("as_of_date") == params[0]
	})
	if len(snapshots) == 0 {
		return nil, errNotFound{Kind: KindBaselineSnapshot, ID: params[0]}
	}
	return snapshots[len(snapshots)-1], nil
}

// BaselineSnapshotPost freezes the current cashflows under as_of_date.
func (api *restAPI) BaselineSnapshotPost(ctx *context, in Document) (interface{}, error) {
	if in.String("as_of_date") == "" {
		return nil, errRequired("as_of_date")
	}
	in["cashflows"] = api.State.List(KindCashflow, nil)
	return responseCreated{Body: api.State.Create(KindBaselineSnapshot, in)}, nil
}

// SettlePost marks a hedge contract settled and records a ledger
// entry carrying the request body.
func (api *restAPI) SettlePost(ctx *context, in Document) (interface{}, error) {
	contractID := ctx.Vars["contract_id"]
	_, err := api.State.Update(KindHedgeContract, contractID, "settled", in, func(contract Document) error {
		if status := contract.String("status"); status == "settled" {
			return errConflict{Kind: KindHedgeContract, ID: contractID, Status: status, Action: "settle"}
		}
		contract["status"] = "settled"
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry := in.copy()
	entry["contract_id"] = contractID
	entry["source_event_type"] = SettlementEventType
	entry["source_event_id"] = contractID
	return responseCreated{Body: api.State.Create(KindLedgerEntry, entry)}, nil
}

// LedgerGet lists ledger entries by source event.
func (api *restAPI) LedgerGet(ctx *context) (interface{}, error) {
	eventID := ctx.Param("source_event_id")
	eventType := ctx.Param("source_event_type")
	if eventID == "" && eventType == "" {
		return nil, errRequired("source_event_id")
	}
	return map[string]interface{}{
		"entries": api.State.List(KindLedgerEntry, func(doc Document) bool {
			return (eventID == "" || doc.String("source_event_id") == eventID) &&
				(eventType == "" || doc.String("source_event_type") == eventType)
		}),
	}, nil
}

// ContractLedgerGet lists the ledger entries of one hedge contract,
// optionally between start and end inclusive.  Entries are dated by
// settlement_date, or by created_at if they have none.
func (api *restAPI) ContractLedgerGet(ctx *context) (interface{}, error) {
	contractID := ctx.Vars["contract_id"]
	if _, err := api.State.Get(KindHedgeContract, contractID); err != nil {
		return nil, err
	}
	start, end := ctx.Param("start"), ctx.Param("end")
	return map[string]interface{}{
		"contract_id": contractID,
		"entries": api.State.List(KindLedgerEntry, func(doc Document) bool {
			if doc.String("contract_id") != contractID {
				return false
			}
			date := doc.String("settlement_date")
			if date == "" {
				date = doc.String("created_at")
			}
			date = dateOnly(date)
			return (start == "" || date >= start) && (end == "" || date <= end)
		}),
	}, nil
}

// dateOnly trims an RFC 3339 timestamp to its date.
func dateOnly(s string) string {
	if len(s) > 10 && s[10] == 'T' {
		return s[:10]
	}
	return s
}
