// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/Andreicr1/hedge-control/restdata"
)

// Audit page sizes.
const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

// AuditEvents searches the audit trail.  The cursor is an opaque
// token from a previous page's next_cursor.
func (api *restAPI) AuditEvents(ctx *context) (interface{}, error) {
	limit, err := ctx.IntParam("limit", DefaultAuditLimit)
	if err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultAuditLimit
	}
	if limit > MaxAuditLimit {
		limit = MaxAuditLimit
	}
	offset, err := ctx.IntParam("cursor", 0)
	if err != nil {
		return nil, err
	}
	filter := restdata.AuditFilter{
		EntityType: ctx.Param("entity_type"),
		EntityID:   ctx.Param("entity_id"),
		Start:      ctx.Param("start"),
		End:        ctx.Param("end"),
		Limit:      limit,
	}
	return api.State.AuditEvents(filter, offset), nil
}
