// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import "errors"

// ErrInvalidJSON is returned from Parse() if its input is not a
// well-formed JSON document.
type ErrInvalidJSON struct {
	// Err describes where the decoder gave up, if known.
	Err error
}

func (e ErrInvalidJSON) Error() string {
	if e.Err == nil {
		return "invalid JSON"
	}
	return "invalid JSON: " + e.Err.Error()
}

// ErrAbsent is returned from Value.Decode() if there is no value to
// decode.
var ErrAbsent = errors.New("No JSON value present")
