// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package hedgecontrol

import "fmt"

// ErrUnknownBackend is returned when a storage backend name is not
// one of the known implementations.
type ErrUnknownBackend struct {
	Name string
}

func (err ErrUnknownBackend) Error() string {
	return fmt.Sprintf("Unknown storage backend %q", err.Name)
}
