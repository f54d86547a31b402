// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// restclient tests against this server.  This only contains
// special-case tests of the skeleton.
//
// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error writing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	router := NewRouter(NewState())
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/api/v1/health",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNegotiateResponse(t *testing.T) {
	tests := []struct {
		Accept string
		Type   string
		Err    bool
	}{
		{"", "application/json", false},
		{"*/*", "application/json", false},
		{"application/json", "application/json", false},
		{"application/*", "application/json", false},
		{"text/*", "text/json", false},
		{"text/html;q=0.9, application/json", "application/json", false},
		{"text/html", "", true},
		{"application/json;q=2", "", true},
	}
	for _, test := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		mediaType, err := negotiateResponse(req)
		if test.Err {
			assert.Error(t, err, test.Accept)
		} else if assert.NoError(t, err, test.Accept) {
			assert.Equal(t, test.Type, mediaType, test.Accept)
		}
	}
}

func TestReadBody(t *testing.T) {
	for _, body := range []string{"", "  ", "null"} {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		doc, err := readBody(req)
		if assert.NoError(t, err, body) {
			assert.Equal(t, Document{}, doc, body)
		}
	}

	for _, body := range []string{"{", "[1,2]", "\"text\""} {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		_, err := readBody(req)
		if assert.Error(t, err, body) {
			assert.IsType(t, errUnprocessable{}, err, body)
		}
	}
}
