// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures that pass between the
// Hedge Control back office and its clients.
//
// Most responses are passed through untouched: the client does not
// interpret them beyond pretty-printing.  These travel as Value, a
// JSON value of any shape carried as its raw encoding.  A handful of
// endpoints have callers that need structure (audit search follows
// the next_cursor link, for instance) and get explicit Go types here.
//
// Endpoint paths are RFC 6570 URI templates, expanded with Expand.
// Path variables are percent-encoded; query variables with empty
// values are left out entirely, so
//
//     Expand("/cashflow/ledger{?source_event_id,source_event_type}",
//            map[string]interface{}{"source_event_id": "e1"})
//
// yields "/cashflow/ledger?source_event_id=e1".
//
// Errors from the back office are, by convention, a JSON object with a
// single "detail" field; see ErrorResponse.  Clients should not depend
// on that shape and treat error bodies as an opaque Value.
package restdata

// JSONMediaType is the media type of every JSON request and response.
const JSONMediaType = "application/json"

// TextMediaType is the media type of plain-text responses, which for
// this API means the metrics export.
const TextMediaType = "text/plain"

// ErrorResponse is the body the back office returns with a failing
// HTTP status.
type ErrorResponse struct {
	// Detail is a human-readable message, or for validation
	// failures a list of per-field problems.
	Detail interface{} `json:"detail"`
}

// AuditFilter selects audit events.  Zero-valued fields are not sent.
type AuditFilter struct {
	EntityType string
	EntityID   string
	Start      string
	End        string
	Cursor     string
	Limit      int
}

// AuditEvent is one entry of the append-only audit trail.
type AuditEvent struct {
	ID           string      `json:"id"`
	TimestampUTC string      `json:"timestamp_utc"`
	EntityType   string      `json:"entity_type"`
	EntityID     string      `json:"entity_id"`
	EventType    string      `json:"event_type"`
	Payload      interface{} `json:"payload"`
	Checksum     string      `json:"checksum"`
}

// AuditEventList is one page of audit search results.  NextCursor is
// empty on the last page.
type AuditEventList struct {
	Events     []AuditEvent `json:"events"`
	NextCursor string       `json:"next_cursor"`
}
