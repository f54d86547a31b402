// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/gorilla/mux"
)

// Order types, stored in an order's "order_type" field.
const (
	OrderSales    = "sales"
	OrderPurchase = "purchase"
)

// PopulateOrders adds the order and exposure routes.
func (api *restAPI) PopulateOrders(r *mux.Router) {
	api.handle(r, "/orders/sales", "salesOrders", &resourceHandler{
		Post: api.orderPost(OrderSales),
	})
	api.handle(r, "/orders/purchase", "purchaseOrders", &resourceHandler{
		Post: api.orderPost(OrderPurchase),
	})
	api.handle(r, "/orders/{order_id}", "order", &resourceHandler{
		Get: api.OrderGet,
	})
	api.handle(r, "/exposures/commercial", "commercialExposures", &resourceHandler{
		Get: api.CommercialExposures,
	})
	api.handle(r, "/exposures/global", "globalExposures", &resourceHandler{
		Get: api.GlobalExposures,
	})
}

func (api *restAPI) orderPost(orderType string) func(*context, Document) (interface{}, error) {
	return func(ctx *context, in Document) (interface{}, error) {
		in["order_type"] = orderType
		doc := api.State.Create(KindOrder, in)
		return api.created(doc, "order", "order_id")
	}
}

func (api *restAPI) OrderGet(ctx *context) (interface{}, error) {
	return api.State.Get(KindOrder, ctx.Vars["order_id"])
}

// CommercialExposures lists the orders, which are what give rise to
// commercial exposure.
func (api *restAPI) CommercialExposures(ctx *context) (interface{}, error) {
	return map[string]interface{}{
		"orders": api.State.List(KindOrder, nil),
	}, nil
}

// GlobalExposures lists the orders alongside the hedge contracts
// offsetting them.
func (api *restAPI) GlobalExposures(ctx *context) (interface{}, error) {
	return map[string]interface{}{
		"orders":          api.State.List(KindOrder, nil),
		"hedge_contracts": api.State.List(KindHedgeContract, nil),
	}, nil
}
