// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.

import (
	"fmt"

	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Params: params}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// URL fills out with the path of a named route, using the builder's
// parameters.
func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	r := u.Route(route)
	if u.Error == nil {
		url, err := r.URL(u.Params...)
		if err != nil {
			u.Error = err
		} else {
			*out = url.String()
		}
	}
	return u
}

// created builds a responseCreated for a new document whose canonical
// URL is the named route with the document's id as param.
func (api *restAPI) created(doc Document, route, param string) (interface{}, error) {
	var location string
	err := buildURLs(api.Router, param, doc.String("id")).URL(&location, route).Error
	if err != nil {
		return nil, err
	}
	return responseCreated{Location: location, Body: doc}, nil
}
