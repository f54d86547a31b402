// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// NewRouter creates a new HTTP handler that processes all back-office
// requests.  All resources are under the API prefix, e.g.
// /api/v1/orders/sales, and /api/v1/metrics serves Prometheus metrics
// for this router alone.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(state *State) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix(hedgecontrol.APIPrefix).Subrouter()
	metrics := NewMetrics(state)
	api.Use(metrics.Middleware)
	api.Path("/metrics").Name("metrics").Handler(
		promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	PopulateRouter(api, state)
	return r
}

// NewHandler wraps NewRouter with panic recovery and, if logger is
// non-nil, request logging.
func NewHandler(state *State, logger *logrus.Logger) http.Handler {
	n := negroni.New()
	recovery := negroni.NewRecovery()
	recovery.Logger = logrus.StandardLogger()
	recovery.PrintStack = false
	n.Use(recovery)
	if logger != nil {
		requests := negroni.NewLogger()
		requests.ALogger = logger
		n.Use(requests)
	}
	n.UseHandler(NewRouter(state))
	return n
}

// PopulateRouter adds the back-office routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the API under a different prefix:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/hedge").Subrouter()
//     PopulateRouter(s, restserver.NewState())
func PopulateRouter(r *mux.Router, state *State) {
	api := &restAPI{State: state, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	State  *State
	Router *mux.Router
}

func (api *restAPI) handle(r *mux.Router, path, name string, h *resourceHandler) {
	h.Context = newContext
	r.Path(path).Name(name).Handler(h)
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.handle(r, "/health", "health", &resourceHandler{Get: api.Health})
	api.handle(r, "/ready", "ready", &resourceHandler{Get: api.Ready})
	api.handle(r, "/audit/events", "auditEvents", &resourceHandler{Get: api.AuditEvents})
	api.PopulateOrders(r)
	api.PopulateRFQs(r)
	api.PopulateContracts(r)
	api.PopulateCashflows(r)
	api.PopulateAnalytics(r)
}

// Health reports liveness.
func (api *restAPI) Health(ctx *context) (interface{}, error) {
	return map[string]interface{}{"status": "ok"}, nil
}

// Ready reports readiness along with the size of the store.
func (api *restAPI) Ready(ctx *context) (interface{}, error) {
	return map[string]interface{}{
		"status":       "ready",
		"documents":    api.State.Counts(),
		"audit_events": api.State.AuditLength(),
	}, nil
}
