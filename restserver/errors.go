// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"
	"net/http"
	"strings"
)

// errorStatus is implemented by errors that map to a specific HTTP
// status code.
type errorStatus interface {
	HTTPStatus() int
}

// errNotFound is returned when a URL names a document that does not
// exist.
type errNotFound struct {
	Kind string
	ID   string
}

func (e errNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", kindName(e.Kind), e.ID)
}

func (e errNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// errUnprocessable is returned when a request is well-formed HTTP but
// its body or parameters cannot be used.
type errUnprocessable struct {
	Err error
}

func (e errUnprocessable) Error() string {
	return e.Err.Error()
}

func (e errUnprocessable) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// errRequired is an errUnprocessable for missing query parameters.
func errRequired(names ...string) errUnprocessable {
	verb := "is"
	if len(names) > 1 {
		verb = "are"
	}
	return errUnprocessable{Err: fmt.Errorf("%s %s required", strings.Join(names, " and "), verb)}
}

// errConflict is returned when an action does not apply to a
// document in its current state.
type errConflict struct {
	Kind   string
	ID     string
	Status string
	Action string
}

func (e errConflict) Error() string {
	return fmt.Sprintf("Cannot %s %s %s: status is %s", e.Action, kindName(e.Kind), e.ID, e.Status)
}

func (e errConflict) HTTPStatus() int {
	return http.StatusConflict
}

// errMethodNotAllowed is used within the resourceHandler implementation
// to flag an error if a particular HTTP method is not allowed.  This
// corresponds exactly to the 405 Method Not Allowed HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// errNotAcceptable is returned from negotiateResponse() if the Accept:
// header does not mention any media types we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}
