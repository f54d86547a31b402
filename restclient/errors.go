// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"errors"
	"fmt"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/Andreicr1/hedge-control/restdata"
)

// ConfigStatusText is the StatusText of the Error returned when a
// request cannot be made because no API base URL is configured.
const ConfigStatusText = "API_BASE_URL_REQUIRED"

// ErrNoLocation is returned when a request resolves to a path on the
// client's own origin but the client has no location.
var ErrNoLocation = errors.New("No API base URL and no location to resolve against")

// Error is a catch-all error for non-successes returned from the REST
// endpoint, and for requests that could not be made for lack of
// configuration.
type Error struct {
	// Status is the HTTP status code, or 0 if no request was made.
	Status int

	// StatusText is the reason phrase of the response, or
	// ConfigStatusText.
	StatusText string

	// URL is the URL of the failed request.
	URL string

	// Details holds the response body, if any.  For JSON requests
	// it is the parsed body or absent; for text requests it is a
	// string value.
	Details restdata.Value

	message string
}

func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}
	msg := fmt.Sprintf("Request failed with status %d", e.Status)
	if e.StatusText != "" {
		msg += " " + e.StatusText
	}
	return msg
}

// IsConfigError returns true if err is the error returned when no API
// base URL is configured.
func IsConfigError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == 0 && e.StatusText == ConfigStatusText
}

func newConfigError(host, path string) *Error {
	details, _ := restdata.ValueOf(map[string]interface{}{
		"host": host,
		"path": path,
	})
	return &Error{
		StatusText: ConfigStatusText,
		URL:        path,
		Details:    details,
		message: fmt.Sprintf("API base URL is not configured; %s serves only static files, so set %s",
			host, hedgecontrol.BaseURLParam),
	}
}
