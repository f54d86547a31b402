// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Andreicr1/hedge-control/memory"
	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// request is what a recorder saw of one request.
type request struct {
	Method      string
	Path        string
	Query       string
	Accept      string
	ContentType string
	Body        string
}

// recorder is an HTTP server that remembers every request and answers
// with a fixed handler.
type recorder struct {
	lock     sync.Mutex
	requests []request
	handler  http.HandlerFunc
	server   *httptest.Server
}

func newRecorder(t *testing.T, handler http.HandlerFunc) *recorder {
	r := &recorder{handler: handler}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := ioutil.ReadAll(req.Body)
		r.lock.Lock()
		r.requests = append(r.requests, request{
			Method:      req.Method,
			Path:        req.URL.Path,
			Query:       req.URL.RawQuery,
			Accept:      req.Header.Get("Accept"),
			ContentType: req.Header.Get("Content-Type"),
			Body:        string(body),
		})
		r.lock.Unlock()
		r.handler(w, req)
	}))
	t.Cleanup(r.server.Close)
	return r
}

func (r *recorder) Requests() []request {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]request(nil), r.requests...)
}

// client returns a client whose static base URL is the recorder.
func (r *recorder) client(t *testing.T) *restclient.Client {
	c, err := restclient.New("", memory.New())
	require.NoError(t, err)
	c.SetStaticBaseURL(r.server.URL + "/")
	return c
}

func reply(status int, contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestGetJSON(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{"id":"123","status":"open"}`))
	c := r.client(t)

	value, err := c.GetJSON(context.Background(), "/orders/123")
	require.NoError(t, err)
	assert.Equal(t, "open", value.Get("status").Text())

	reqs := r.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, "GET", reqs[0].Method)
		assert.Equal(t, "/api/v1/orders/123", reqs[0].Path)
		assert.Equal(t, restdata.JSONMediaType, reqs[0].Accept)
		assert.Equal(t, "", reqs[0].ContentType)
	}
}

func TestGetJSONUnparseableSuccess(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, "text/html", `<html>not json</html>`))
	value, err := r.client(t).GetJSON(context.Background(), "/health")
	assert.NoError(t, err)
	assert.True(t, value.IsAbsent())
}

func TestGetJSONEmptySuccess(t *testing.T) {
	r := newRecorder(t, reply(http.StatusNoContent, restdata.JSONMediaType, ""))
	value, err := r.client(t).GetJSON(context.Background(), "/health")
	assert.NoError(t, err)
	assert.True(t, value.IsAbsent())
}

func TestHTTPError(t *testing.T) {
	r := newRecorder(t, reply(http.StatusTeapot, restdata.JSONMediaType, `{"detail":"short and stout"}`))
	_, err := r.client(t).GetJSON(context.Background(), "/orders/123")
	require.Error(t, err)

	var httpErr *restclient.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 418, httpErr.Status)
	assert.Equal(t, "I'm a teapot", httpErr.StatusText)
	assert.Equal(t, r.server.URL+"/api/v1/orders/123", httpErr.URL)
	assert.Equal(t, "short and stout", httpErr.Details.Get("detail").Text())
	assert.Equal(t, "Request failed with status 418 I'm a teapot", httpErr.Error())
	assert.False(t, restclient.IsConfigError(err))
}

func TestHTTPErrorNonJSON(t *testing.T) {
	r := newRecorder(t, reply(http.StatusBadGateway, "text/html", `<h1>bad gateway</h1>`))
	_, err := r.client(t).GetJSON(context.Background(), "/exposures/global")

	var httpErr *restclient.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Equal(t, "Bad Gateway", httpErr.StatusText)
	assert.True(t, httpErr.Details.IsAbsent())
}

func TestGetText(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.TextMediaType, "requests_total 3\n"))
	text, err := r.client(t).GetText(context.Background(), "/metrics")
	require.NoError(t, err)
	assert.Equal(t, "requests_total 3\n", text)

	reqs := r.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, restdata.TextMediaType, reqs[0].Accept)
		assert.Equal(t, "/api/v1/metrics", reqs[0].Path)
	}
}

func TestGetTextError(t *testing.T) {
	r := newRecorder(t, reply(http.StatusServiceUnavailable, restdata.TextMediaType, "warming up"))
	_, err := r.client(t).GetText(context.Background(), "/metrics")

	var httpErr *restclient.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, "warming up", httpErr.Details.Text())
	assert.Equal(t, restdata.String, httpErr.Details.Kind())
}

func TestPostJSON(t *testing.T) {
	r := newRecorder(t, reply(http.StatusCreated, restdata.JSONMediaType, `{"id":"so-1"}`))
	c := r.client(t)

	body, err := restdata.Parse(`{"customer":"ACME","quantity_mt":25}`)
	require.NoError(t, err)
	value, err := c.CreateSalesOrder(context.Background(), body)
	require.NoError(t, err)
	assert.Equal(t, "so-1", value.Get("id").Text())

	reqs := r.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, "POST", reqs[0].Method)
		assert.Equal(t, "/api/v1/orders/sales", reqs[0].Path)
		assert.Equal(t, restdata.JSONMediaType, reqs[0].Accept)
		assert.Equal(t, restdata.JSONMediaType, reqs[0].ContentType)
		assert.JSONEq(t, `{"customer":"ACME","quantity_mt":25}`, reqs[0].Body)
	}
}

func TestPostJSONStruct(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{}`))
	_, err := r.client(t).RunWhatIf(context.Background(), map[string]interface{}{
		"price_shift": -50,
	})
	require.NoError(t, err)
	reqs := r.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, "/api/v1/scenario/what-if/run", reqs[0].Path)
		assert.JSONEq(t, `{"price_shift":-50}`, reqs[0].Body)
	}
}

func TestConfigErrorIssuesNoRequest(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{}`))
	c, err := restclient.New("https://acme.github.io/hedge/", memory.New())
	require.NoError(t, err)
	c.HTTPClient = r.server.Client()

	_, err = c.GetJSON(context.Background(), "/health")
	assert.True(t, restclient.IsConfigError(err))
	_, err = c.GetText(context.Background(), "/metrics")
	assert.True(t, restclient.IsConfigError(err))
	_, err = c.PostJSON(context.Background(), "/rfqs", map[string]interface{}{})
	assert.True(t, restclient.IsConfigError(err))

	assert.Empty(t, r.Requests())
}

func TestSameOrigin(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{"status":"ok"}`))
	c, err := restclient.New(r.server.URL+"/console/index.html", memory.New())
	require.NoError(t, err)

	value, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", value.Get("status").Text())
	reqs := r.Requests()
	if assert.Len(t, reqs, 1) {
		assert.Equal(t, "/api/v1/health", reqs[0].Path)
	}
}

func TestNoLocation(t *testing.T) {
	c, err := restclient.New("", memory.New())
	require.NoError(t, err)
	_, err = c.Health(context.Background())
	assert.Equal(t, restclient.ErrNoLocation, err)
}

// failingTransport fails every request without a response.
type failingTransport struct{ err error }

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	c, err := restclient.New("", memory.New())
	require.NoError(t, err)
	c.SetStaticBaseURL("https://api.example.com")
	c.HTTPClient = &http.Client{Transport: failingTransport{boom}}

	_, err = c.GetJSON(context.Background(), "/health")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	var httpErr *restclient.Error
	assert.False(t, errors.As(err, &httpErr))
}

func TestQueryBaseURLRemembered(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{}`))
	store := memory.New()

	first, err := restclient.New("https://acme.github.io/?apiBaseUrl="+url.QueryEscape(r.server.URL), store)
	require.NoError(t, err)
	_, err = first.Order(context.Background(), "123")
	require.NoError(t, err)

	second, err := restclient.New("https://acme.github.io/", store)
	require.NoError(t, err)
	_, err = second.Order(context.Background(), "456")
	require.NoError(t, err)

	reqs := r.Requests()
	if assert.Len(t, reqs, 2) {
		assert.Equal(t, "/api/v1/orders/123", reqs[0].Path)
		assert.Equal(t, "/api/v1/orders/456", reqs[1].Path)
	}
}

func TestEndpointPaths(t *testing.T) {
	r := newRecorder(t, reply(http.StatusOK, restdata.JSONMediaType, `{}`))
	c := r.client(t)
	ctx := context.Background()

	calls := []struct {
		Call  func() error
		Path  string
		Query string
	}{
		{func() error { _, err := c.Cashflow(ctx, "cf 1", "1"); return err }, "/api/v1/cashflows/cf 1", "_=1"},
		{func() error { _, err := c.CashflowAnalytic(ctx, "2026-01-31"); return err }, "/api/v1/cashflow/analytic", "as_of_date=2026-01-31"},
		{func() error { _, err := c.LedgerByEvent(ctx, "e1", ""); return err }, "/api/v1/cashflow/ledger", "source_event_id=e1"},
		{func() error { _, err := c.LedgerForContract(ctx, "hc-1", "", ""); return err }, "/api/v1/cashflow/ledger/hedge-contracts/hc-1", ""},
		{func() error { _, err := c.PL(ctx, "order", "o-1", "2026-01-01", "2026-01-31"); return err }, "/api/v1/pl/order/o-1", "period_start=2026-01-01&period_end=2026-01-31"},
		{func() error { _, err := c.RFQRanking(ctx, "r-1"); return err }, "/api/v1/rfqs/r-1/ranking", ""},
		{func() error { _, err := c.RejectRFQ(ctx, "r-1", nil); return err }, "/api/v1/rfqs/r-1/actions/reject", ""},
		{func() error { _, err := c.MTMSnapshot(ctx, "order", "o-1", "2026-01-31"); return err }, "/api/v1/mtm/snapshots", "object_type=order&object_id=o-1&as_of_date=2026-01-31"},
		{func() error {
			_, err := c.AuditEvents(ctx, restdata.AuditFilter{EntityType: "rfq", Limit: 10})
			return err
		}, "/api/v1/audit/events", "entity_type=rfq&limit=10"},
	}
	for i, call := range calls {
		require.NoError(t, call.Call(), "call %d", i)
	}
	reqs := r.Requests()
	require.Len(t, reqs, len(calls))
	for i, call := range calls {
		assert.Equal(t, call.Path, reqs[i].Path, "call %d", i)
		assert.Equal(t, call.Query, reqs[i].Query, "call %d", i)
	}
}

func TestObserve(t *testing.T) {
	r := newRecorder(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/v1/health":
			reply(http.StatusOK, restdata.JSONMediaType, `{"status":"ok"}`)(w, req)
		case "/api/v1/ready":
			reply(http.StatusOK, restdata.JSONMediaType, `{"status":"ready"}`)(w, req)
		default:
			reply(http.StatusOK, restdata.TextMediaType, "up 1\n")(w, req)
		}
	})
	obs, err := r.client(t).Observe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", obs.Health.Get("status").Text())
	assert.Equal(t, "ready", obs.Ready.Get("status").Text())
	assert.Equal(t, "up 1\n", obs.Metrics)
	assert.Len(t, r.Requests(), 3)
}

func TestObserveFailure(t *testing.T) {
	r := newRecorder(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/api/v1/ready" {
			reply(http.StatusServiceUnavailable, restdata.JSONMediaType, `{"detail":"db down"}`)(w, req)
			return
		}
		reply(http.StatusOK, restdata.JSONMediaType, `{"status":"ok"}`)(w, req)
	})
	obs, err := r.client(t).Observe(context.Background())
	var httpErr *restclient.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	assert.Equal(t, "db down", httpErr.Details.Get("detail").Text())
	assert.Equal(t, restclient.Observation{}, obs)
}

// blockedRecorder fails /health at once and holds the request for
// blocked until the test ends, answering it with blockedStatus.
func blockedRecorder(t *testing.T, blocked string, blockedStatus int) *recorder {
	release := make(chan struct{})
	r := newRecorder(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/api/v1/health":
			reply(http.StatusInternalServerError, restdata.JSONMediaType, `{"detail":"health failed"}`)(w, req)
		case blocked:
			<-release
			reply(blockedStatus, restdata.JSONMediaType, `{"detail":"late"}`)(w, req)
		default:
			reply(http.StatusOK, restdata.JSONMediaType, `{"status":"ok"}`)(w, req)
		}
	})
	// Runs before the server closes.
	t.Cleanup(func() { close(release) })
	return r
}

// observeWithin runs Observe and fails the test if it does not
// return promptly.
func observeWithin(t *testing.T, c *restclient.Client) (restclient.Observation, error) {
	type outcome struct {
		obs restclient.Observation
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		obs, err := c.Observe(context.Background())
		done <- outcome{obs, err}
	}()
	select {
	case o := <-done:
		return o.obs, o.err
	case <-time.After(5 * time.Second):
		t.Fatal("Observe waited for a blocked request")
		return restclient.Observation{}, nil
	}
}

func TestObserveDoesNotWaitAfterFailure(t *testing.T) {
	r := blockedRecorder(t, "/api/v1/metrics", http.StatusOK)
	obs, err := observeWithin(t, r.client(t))
	var httpErr *restclient.Error
	if assert.True(t, errors.As(err, &httpErr)) {
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	}
	assert.Equal(t, restclient.Observation{}, obs)
}

func TestObserveReportsFirstFailure(t *testing.T) {
	// /ready also fails, but only after Observe has returned.
	r := blockedRecorder(t, "/api/v1/ready", http.StatusServiceUnavailable)
	_, err := observeWithin(t, r.client(t))
	var httpErr *restclient.Error
	if assert.True(t, errors.As(err, &httpErr)) {
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "health failed", httpErr.Details.Get("detail").Text())
	}
}

func TestAllAuditEvents(t *testing.T) {
	r := newRecorder(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Query().Get("cursor") {
		case "":
			reply(http.StatusOK, restdata.JSONMediaType,
				`{"events":[{"id":"e1"},{"id":"e2"}],"next_cursor":"c2"}`)(w, req)
		case "c2":
			reply(http.StatusOK, restdata.JSONMediaType,
				`{"events":[{"id":"e3"}],"next_cursor":null}`)(w, req)
		default:
			reply(http.StatusBadRequest, restdata.JSONMediaType, `{"detail":"bad cursor"}`)(w, req)
		}
	})
	events, err := r.client(t).AllAuditEvents(context.Background(), restdata.AuditFilter{EntityType: "order"})
	require.NoError(t, err)
	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)

	reqs := r.Requests()
	if assert.Len(t, reqs, 2) {
		assert.Equal(t, "entity_type=order", reqs[0].Query)
		assert.Equal(t, "entity_type=order&cursor=c2", reqs[1].Query)
	}
}
