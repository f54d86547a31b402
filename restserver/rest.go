// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a REST skeleton framework.
//
// The bulk of this is dealing with HTTP content type negotiation, and
// providing a standard way to deal with input and output values.
// Every resource speaks JSON only; the metrics export is served by
// the Prometheus handler and never reaches this code.

import (
	"errors"
	"io/ioutil"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/Andreicr1/hedge-control/restdata"
)

var typeMap = map[string]string{
	"text/json":            restdata.JSONMediaType,
	restdata.JSONMediaType: restdata.JSONMediaType,
}

// errBadAccept is returned from negotiateResponse() if the Accept:
// header is malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotObject is returned when a request body is JSON but not an
// object.
var errNotObject = errors.New("Request body must be a JSON object")

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Location holds the canonical URL to the newly created resource.
	Location string

	// Body contains the object sent in the body of the response.
	Body interface{}
}

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action.  The
	// document parameter is the request body, or an empty
	// document if there was none.  The return can be any useful
	// return value, including responseCreated.
	Post func(*context, Document) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx          *context
		in           Document
		out          interface{}
		err          error
		status       int
		responseType string
	)

	// Start by trying to come up with a response type, even before
	// trying to parse the input.  This determines what format an
	// error message could be sent back as.
	status = http.StatusBadRequest
	responseType, err = negotiateResponse(req)
	if err != nil {
		// Gotta pick something
		responseType = restdata.JSONMediaType
	}

	// Get bits from URL parameters
	if err == nil {
		ctx, err = h.Context(req)
	}

	// Read the JSON body, if it's there
	if err == nil && req.Method == "POST" {
		in, err = readBody(req)
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		// If anything else goes wrong here, it's an error in
		// client code
		status = http.StatusInternalServerError
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case "POST":
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		// Pick a better status code if we know of one
		if errS, hasStatus := err.(errorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
		out = restdata.ErrorResponse{Detail: err.Error()}
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		if created.Location != "" {
			resp.Header().Set("Location", created.Location)
		}
		out = created.Body
	} else {
		status = http.StatusOK
	}
	if req.Method == "HEAD" {
		out = nil
	}

	// Encode before writing the status line, so an encoding failure
	// can still be reported.
	var body []byte
	if out != nil {
		body, err = restdata.Marshal(out)
		if err != nil {
			status = http.StatusInternalServerError
			body, _ = restdata.Marshal(restdata.ErrorResponse{Detail: err.Error()})
		}
		resp.Header().Set("Content-Type", responseType)
	}
	resp.WriteHeader(status)
	if body != nil {
		// By this point the status line is gone; nothing useful
		// can be done with a write error.
		_, _ = resp.Write(body)
	}
}

// readBody decodes a JSON object request body.  An empty or null body
// is an empty document.
func readBody(req *http.Request) (Document, error) {
	if req.Body == nil {
		return Document{}, nil
	}
	bytes, err := ioutil.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	value, err := restdata.ParseBytes(bytes)
	if err != nil {
		return nil, errUnprocessable{Err: err}
	}
	switch value.Kind() {
	case restdata.Absent, restdata.Null:
		return Document{}, nil
	case restdata.Object:
	default:
		return nil, errUnprocessable{Err: errNotObject}
	}
	var doc Document
	if err = value.Decode(&doc); err != nil {
		return nil, errUnprocessable{Err: err}
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// negotiateResponse returns a supported MIME type for the response
// body, following the path laid out in RFC 7231 section 5.3.
func negotiateResponse(req *http.Request) (string, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return "", err
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return "", err
			}
			if q < 0.0 || q > 1.0 {
				return "", errBadAccept
			}
		}
		if q < bestQ {
			continue
		}

		// This is acceptable if it's listed in the type
		// map; or it's one of a couple of specific wildcards.
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if _, knownType := typeMap[mediaType]; knownType {
			// Overrides any wildcard.  We want the first one
			// at a given q to win.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
	}
	// If this failed to win, return an error
	if bestQ == 0.0 {
		return "", errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*":
		return restdata.JSONMediaType, nil
	case "text/*":
		return "text/json", nil
	default:
		return bestType, nil
	}
}
