// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		Template string
		Vars     map[string]interface{}
		Expanded string
	}{
		{"/orders/{order_id}", map[string]interface{}{"order_id": "o-1"}, "/orders/o-1"},
		{"/orders/{order_id}", map[string]interface{}{"order_id": "a/b c"}, "/orders/a%2Fb%20c"},
		{
			"/cashflow/ledger{?source_event_id,source_event_type}",
			map[string]interface{}{"source_event_id": "e1", "source_event_type": ""},
			"/cashflow/ledger?source_event_id=e1",
		},
		{
			"/cashflow/ledger{?source_event_id,source_event_type}",
			map[string]interface{}{},
			"/cashflow/ledger",
		},
		{
			"/audit/events{?entity_type,limit}",
			map[string]interface{}{"entity_type": "order", "limit": 50},
			"/audit/events?entity_type=order&limit=50",
		},
		{
			"/audit/events{?limit}",
			map[string]interface{}{"limit": nil},
			"/audit/events",
		},
	}
	for _, test := range tests {
		expanded, err := Expand(test.Template, test.Vars)
		if assert.NoError(t, err, test.Template) {
			assert.Equal(t, test.Expanded, expanded, test.Template)
		}
	}
}
