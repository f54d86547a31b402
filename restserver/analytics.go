// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"

	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"
)

// mtmObjects maps the object types accepted by the MTM snapshot query
// to document kinds.
var mtmObjects = map[string]string{
	"hedge_contract": KindHedgeContract,
	"order":          KindOrder,
}

// PopulateAnalytics adds the P&L, MTM, market data, and scenario
// routes.
func (api *restAPI) PopulateAnalytics(r *mux.Router) {
	api.handle(r, "/pl/snapshots", "plSnapshots", &resourceHandler{
		Get:  api.PLSnapshotsGet,
		Post: api.PLSnapshotPost,
	})
	api.handle(r, "/pl/{entity_type}/{entity_id}", "pl", &resourceHandler{
		Get: api.PLGet,
	})
	api.handle(r, "/mtm/hedge-contracts/{contract_id}", "mtmHedgeContract", &resourceHandler{
		Get: api.mtmGet(KindHedgeContract, "contract_id"),
	})
	api.handle(r, "/mtm/orders/{order_id}", "mtmOrder", &resourceHandler{
		Get: api.mtmGet(KindOrder, "order_id"),
	})
	api.handle(r, "/mtm/snapshots", "mtmSnapshots", &resourceHandler{
		Get: api.MTMSnapshotGet,
	})
	api.handle(r, "/market-data/westmetall/aluminum/cash-settlement/ingest", "westmetallIngest", &resourceHandler{
		Post: api.MarketDataPost,
	})
	api.handle(r, "/scenario/what-if/run", "whatIf", &resourceHandler{
		Post: api.WhatIfPost,
	})
}

func plMatch(entityType, entityID, start, end string) func(Document) bool {
	return func(doc Document) bool {
		return (entityType == "" || doc.String("entity_type") == entityType) &&
			(entityID == "" || doc.String("entity_id") == entityID) &&
			(start == "" || doc.String("period_start") == start) &&
			(end == "" || doc.String("period_end") == end)
	}
}

// PLGet returns the most recent P&L snapshot for one entity and
// period.
func (api *restAPI) PLGet(ctx *context) (interface{}, error) {
	params, err := ctx.RequireParams("period_start", "period_end")
	if err != nil {
		return nil, err
	}
	entityType, entityID := ctx.Vars["entity_type"], ctx.Vars["entity_id"]
	snapshots := api.State.List(KindPLSnapshot, plMatch(entityType, entityID, params[0], params[1]))
	if len(snapshots) == 0 {
		return nil, errNotFound{
			Kind: KindPLSnapshot,
			ID:   fmt.Sprintf("%s/%s %s..%s", entityType, entityID, params[0], params[1]),
		}
	}
	return snapshots[len(snapshots)-1], nil
}

func (api *restAPI) PLSnapshotsGet(ctx *context) (interface{}, error) {
	return map[string]interface{}{
		"snapshots": api.State.List(KindPLSnapshot, plMatch(
			ctx.Param("entity_type"),
			ctx.Param("entity_id"),
			ctx.Param("period_start"),
			ctx.Param("period_end"),
		)),
	}, nil
}

func (api *restAPI) PLSnapshotPost(ctx *context, in Document) (interface{}, error) {
	for _, field := range []string{"entity_type", "entity_id", "period_start", "period_end"} {
		if in.String(field) == "" {
			return nil, errRequired(field)
		}
	}
	return responseCreated{Body: api.State.Create(KindPLSnapshot, in)}, nil
}

// mtmView echoes a valued object.  The stub holds no prices, so no
// valuation is computed.
func (api *restAPI) mtmView(kind, id, asOf string) (interface{}, error) {
	doc, err := api.State.Get(kind, id)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"object_type": kind,
		"object_id":   id,
		"as_of_date":  asOf,
		"object":      doc,
	}, nil
}

func (api *restAPI) mtmGet(kind, idVar string) func(*context) (interface{}, error) {
	return func(ctx *context) (interface{}, error) {
		params, err := ctx.RequireParams("as_of_date")
		if err != nil {
			return nil, err
		}
		return api.mtmView(kind, ctx.Vars[idVar], params[0])
	}
}

func (api *restAPI) MTMSnapshotGet(ctx *context) (interface{}, error) {
	params, err := ctx.RequireParams("object_type", "object_id", "as_of_date")
	if err != nil {
		return nil, err
	}
	kind, known := mtmObjects[params[0]]
	if !known {
		return nil, errUnprocessable{Err: fmt.Errorf("Unknown object_type %q", params[0])}
	}
	return api.mtmView(kind, params[1], params[2])
}

// MarketDataPost stores an ingestion request.  If it carries a
// "prices" list, the response counts its entries.
func (api *restAPI) MarketDataPost(ctx *context, in Document) (interface{}, error) {
	count := 1
	if prices, isList := in["prices"].([]interface{}); isList {
		count = len(prices)
	}
	in["source"] = "westmetall"
	in["metal"] = "aluminum"
	doc := api.State.Create(KindMarketData, in)
	return responseCreated{Body: map[string]interface{}{
		"id":         doc["id"],
		"ingested":   count,
		"created_at": doc["created_at"],
	}}, nil
}

// WhatIfPost echoes a scenario run.  Nothing is stored or audited.
func (api *restAPI) WhatIfPost(ctx *context, in Document) (interface{}, error) {
	return map[string]interface{}{
		"scenario_id": uuid.NewV4().String(),
		"run_at":      api.State.now(),
		"inputs":      in,
	}, nil
}
