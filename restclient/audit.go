// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
)

func auditVars(filter restdata.AuditFilter) map[string]interface{} {
	vars := map[string]interface{}{
		"entity_type": filter.EntityType,
		"entity_id":   filter.EntityID,
		"start":       filter.Start,
		"end":         filter.End,
		"cursor":      filter.Cursor,
	}
	if filter.Limit > 0 {
		vars["limit"] = filter.Limit
	}
	return vars
}

// AuditEvents searches the audit trail, returning one page of
// results.  Empty filter fields are not sent.
func (c *Client) AuditEvents(ctx context.Context, filter restdata.AuditFilter) (restdata.Value, error) {
	return c.getFrom(ctx, "/audit/events{?entity_type,entity_id,start,end,cursor,limit}", auditVars(filter))
}

// AllAuditEvents searches the audit trail starting at filter.Cursor
// and follows next_cursor until the last page.  If any page fails, the
// pages retrieved so far are returned along with the error.
func (c *Client) AllAuditEvents(ctx context.Context, filter restdata.AuditFilter) ([]restdata.AuditEvent, error) {
	var events []restdata.AuditEvent
	seen := make(map[string]bool)
	for {
		value, err := c.AuditEvents(ctx, filter)
		if err != nil {
			return events, err
		}
		var page restdata.AuditEventList
		if err = value.Decode(&page); err != nil {
			return events, err
		}
		events = append(events, page.Events...)
		if page.NextCursor == "" || seen[page.NextCursor] {
			return events, nil
		}
		seen[page.NextCursor] = true
		filter.Cursor = page.NextCursor
	}
}
