// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

/*
Package restserver publishes a stand-in for the Hedge Control back
office via a REST interface.

This is a development stub.  It stores whatever documents it is sent
and answers queries about them, but it implements no hedging business
rules: nothing is priced, netted, or valued.  Use NewRouter() or
NewHandler() to get an http.Handler; restclient.Client can talk to it.

Everything lives under /api/v1.  Created documents are assigned an
"id" and a "created_at" timestamp and returned with 201 Created and a
Location header where the document has a canonical URL.  Every create
and every RFQ or settlement action appends an event to the audit
trail, searchable at /api/v1/audit/events.

Errors are returned as a JSON object with a single "detail" string:
404 for unknown ids, 422 for malformed JSON or missing required query
parameters, 409 for RFQ actions that do not apply in the RFQ's
current status.

/api/v1/metrics serves Prometheus metrics: requests by route, and the
number of stored documents by kind.
*/
package restserver
