// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package hedgecontrol defines the small set of abstractions shared by
// the Hedge Control client packages.
//
// The client itself lives in the restclient package; the durable
// key/value storage it uses to remember a once-supplied API base URL
// is described here by the Store interface, with implementations in
// the memory, filestore, and postgres packages.  The backend package
// selects one of those from a command-line string, and the cache
// package can sit in front of any of them.
package hedgecontrol

// APIPrefix is the fixed version segment that every logical API path
// is interpreted under.
const APIPrefix = "/api/v1"

// BaseURLParam is the name of the location query parameter that
// supplies the API base URL.  It doubles as the durable storage key
// and the static configuration field name.
const BaseURLParam = "apiBaseUrl"

// Store is a durable key/value store.  Implementations must be safe
// for concurrent use.
type Store interface {
	// Get retrieves the value stored under key.  If no value has
	// ever been stored there, returns the empty string and false
	// with no error.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
