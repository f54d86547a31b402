// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// hedgecontrol.Store.  There is no persistence: values live exactly as
// long as the process does.  This is mostly intended for tests and for
// one-shot invocations that should not leave state behind.
package memory

import (
	"sync"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
)

// New creates a new empty in-memory store.
func New() hedgecontrol.Store {
	return &memStore{values: make(map[string]string)}
}

type memStore struct {
	values map[string]string
	sem    sync.RWMutex
}

func (s *memStore) Get(key string) (string, bool, error) {
	s.sem.RLock()
	defer s.sem.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.sem.Lock()
	defer s.sem.Unlock()
	s.values[key] = value
	return nil
}
