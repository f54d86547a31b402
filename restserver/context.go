// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// context holds all of the information that can be extracted from URL
// parameters.
type context struct {
	Vars        map[string]string
	QueryParams url.Values
}

func newContext(req *http.Request) (*context, error) {
	return &context{
		Vars:        mux.Vars(req),
		QueryParams: req.URL.Query(),
	}, nil
}

// Param returns the trimmed value of a query parameter.
func (ctx *context) Param(name string) string {
	return strings.TrimSpace(ctx.QueryParams.Get(name))
}

// RequireParams returns the values of query parameters that must all
// be present, or an errUnprocessable naming all of them.
func (ctx *context) RequireParams(names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = ctx.Param(name)
		if values[i] == "" {
			return nil, errRequired(names...)
		}
	}
	return values, nil
}

// IntParam parses a non-negative integer query parameter, returning
// def if it is absent.
func (ctx *context) IntParam(name string, def int) (int, error) {
	s := ctx.Param(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errUnprocessable{Err: fmt.Errorf("%s must be a non-negative integer", name)}
	}
	return n, nil
}
