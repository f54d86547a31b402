// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/negroni"
)

// Metrics holds the Prometheus collectors for one router.
type Metrics struct {
	// Registry holds every collector below, plus the standard Go
	// runtime collector.
	Registry *prometheus.Registry

	// Requests counts requests by route name, method, and status.
	Requests *prometheus.CounterVec
}

// NewMetrics creates a registry reporting on requests and on the
// contents of state.
func NewMetrics(state *State) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hedgecontrol",
				Subsystem: "stub",
				Name:      "requests_total",
				Help:      "HTTP requests served by route",
			},
			[]string{"route", "method", "code"},
		),
	}
	m.Registry.MustRegister(m.Requests)
	m.Registry.MustRegister(stateCollector{state: state})
	m.Registry.MustRegister(prometheus.NewGoCollector())
	return m
}

// Middleware counts each request against the name of the route it
// matched.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rw := negroni.NewResponseWriter(w)
		next.ServeHTTP(rw, req)
		route := "unknown"
		if current := mux.CurrentRoute(req); current != nil && current.GetName() != "" {
			route = current.GetName()
		}
		m.Requests.With(prometheus.Labels{
			"route":  route,
			"method": req.Method,
			"code":   strconv.Itoa(rw.Status()),
		}).Inc()
	})
}

var (
	documentsDesc = prometheus.NewDesc(
		"hedgecontrol_stub_documents",
		"Documents stored by kind",
		[]string{"kind"}, nil,
	)
	auditEventsDesc = prometheus.NewDesc(
		"hedgecontrol_stub_audit_events",
		"Audit events recorded",
		nil, nil,
	)
)

// stateCollector reports the size of a State at scrape time.
type stateCollector struct {
	state *State
}

func (c stateCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- documentsDesc
	ch <- auditEventsDesc
}

func (c stateCollector) Collect(ch chan<- prometheus.Metric) {
	for kind, count := range c.state.Counts() {
		ch <- prometheus.MustNewConstMetric(documentsDesc, prometheus.GaugeValue, float64(count), kind)
	}
	ch <- prometheus.MustNewConstMetric(auditEventsDesc, prometheus.GaugeValue, float64(c.state.AuditLength()))
}
