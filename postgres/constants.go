// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

// Table and column names.  These must match the migrations.
const (
	settingsTable = "hedgectl_settings"
	keyColumn     = "key"
	valueColumn   = "value"
)
