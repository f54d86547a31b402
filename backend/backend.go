// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a durable
// hedgecontrol.Store based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/Andreicr1/hedge-control/cache"
	"github.com/Andreicr1/hedge-control/filestore"
	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/Andreicr1/hedge-control/memory"
	"github.com/Andreicr1/hedge-control/postgres"
)

// Backend describes user-visible parameters to store client state.
// This implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "file"}
//         flag.Var(&backend, "store", "impl:address of durable storage")
//         flag.Parse()
//         store, err := backend.Store()
//     }
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// file path or a database connect string.
	Address string
}

// Store creates a new durable store.  This generally should be only
// called once.  If b.Implementation is "memory", multiple calls to
// this will create multiple independent stores.
//
// An empty "file" address uses filestore.DefaultPath().  A "postgres"
// store is wrapped in a read cache.
func (b *Backend) Store() (hedgecontrol.Store, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "file":
		path := b.Address
		if path == "" {
			var err error
			path, err = filestore.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		return filestore.New(path), nil
	case "postgres":
		store, err := postgres.New(b.Address)
		if err != nil {
			return nil, err
		}
		return cache.New(store, cache.DefaultSize), nil
	default:
		return nil, hedgecontrol.ErrUnknownBackend{Name: b.Implementation}
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither this
// function nor Store() validates the b.Address part of the string
// beyond what opening the store requires.
func (b *Backend) Set(param string) error {
	if param == "" {
		return errors.New("must specify a backend type")
	}
	parts := strings.SplitN(param, ":", 2)
	switch parts[0] {
	case "memory", "file", "postgres":
	default:
		return hedgecontrol.ErrUnknownBackend{Name: parts[0]}
	}
	b.Implementation = parts[0]
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}
