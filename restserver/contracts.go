// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/gorilla/mux"
)

// PopulateContracts adds the hedge contract and linkage routes.
func (api *restAPI) PopulateContracts(r *mux.Router) {
	api.handle(r, "/contracts/hedge", "hedgeContracts", &resourceHandler{
		Post: api.HedgeContractPost,
	})
	api.handle(r, "/contracts/hedge/{contract_id}", "hedgeContract", &resourceHandler{
		Get: api.HedgeContractGet,
	})
	api.handle(r, "/linkages", "linkages", &resourceHandler{
		Post: api.LinkagePost,
	})
	api.handle(r, "/linkages/{linkage_id}", "linkage", &resourceHandler{
		Get: api.LinkageGet,
	})
}

func (api *restAPI) HedgeContractPost(ctx *context, in Document) (interface{}, error) {
	if _, present := in["status"]; !present {
		in["status"] = "active"
	}
	doc := api.State.Create(KindHedgeContract, in)
	return api.created(doc, "hedgeContract", "contract_id")
}

func (api *restAPI) HedgeContractGet(ctx *context) (interface{}, error) {
	return api.State.Get(KindHedgeContract, ctx.Vars["contract_id"])
}

// LinkagePost links documents together.  Any order_id or
// hedge_contract_id named must exist.
func (api *restAPI) LinkagePost(ctx *context, in Document) (interface{}, error) {
	if id := in.String("order_id"); id != "" {
		if _, err := api.State.Get(KindOrder, id); err != nil {
			return nil, errUnprocessable{Err: err}
		}
	}
	if id := in.String("hedge_contract_id"); id != "" {
		if _, err := api.State.Get(KindHedgeContract, id); err != nil {
			return nil, errUnprocessable{Err: err}
		}
	}
	doc := api.State.Create(KindLinkage, in)
	return api.created(doc, "linkage", "linkage_id")
}

func (api *restAPI) LinkageGet(ctx *context) (interface{}, error) {
	return api.State.Get(KindLinkage, ctx.Vars["linkage_id"])
}
