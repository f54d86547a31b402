// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package storetest provides generic functional tests for the
// hedgecontrol.Store interface.  A typical backend test module wraps
// Suite to create its store:
//
//     package mystore
//
//     import (
//             "testing"
//             "github.com/Andreicr1/hedge-control/hedgecontrol/storetest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     type Suite struct{
//             storetest.Suite
//     }
//
//     func (s *Suite) SetupTest() {
//             s.Store = New()
//     }
//
//     func TestStore(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
package storetest

import (
	"fmt"
	"sync"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/stretchr/testify/suite"
)

// Suite is the generic Store backend test suite.
type Suite struct {
	suite.Suite

	// Store contains the store under test.  It is set by importing
	// packages, usually fresh for each test.
	Store hedgecontrol.Store
}

// TestMissingKey checks that an unset key reports absence without
// an error.
func (s *Suite) TestMissingKey() {
	value, ok, err := s.Store.Get("no-such-key")
	if s.NoError(err) {
		s.False(ok)
		s.Equal("", value)
	}
}

// TestSetGet checks that a stored value can be read back.
func (s *Suite) TestSetGet() {
	err := s.Store.Set(hedgecontrol.BaseURLParam, "https://api.example.com")
	if !s.NoError(err) {
		return
	}
	value, ok, err := s.Store.Get(hedgecontrol.BaseURLParam)
	if s.NoError(err) {
		s.True(ok)
		s.Equal("https://api.example.com", value)
	}
}

// TestOverwrite checks that a second Set replaces the first.
func (s *Suite) TestOverwrite() {
	s.Require().NoError(s.Store.Set("key", "first"))
	s.Require().NoError(s.Store.Set("key", "second"))
	value, ok, err := s.Store.Get("key")
	if s.NoError(err) {
		s.True(ok)
		s.Equal("second", value)
	}
}

// TestEmptyValue checks that storing an empty string is distinct
// from never storing anything.
func (s *Suite) TestEmptyValue() {
	s.Require().NoError(s.Store.Set("key", ""))
	value, ok, err := s.Store.Get("key")
	if s.NoError(err) {
		s.True(ok)
		s.Equal("", value)
	}
}

// TestConcurrentSet runs several writers at once; the final value
// must be one of the written values.
func (s *Suite) TestConcurrentSet() {
	var wg sync.WaitGroup
	written := make(map[string]bool)
	for i := 0; i < 8; i++ {
		value := fmt.Sprintf("value-%d", i)
		written[value] = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.Store.Set("key", value))
		}()
	}
	wg.Wait()

	value, ok, err := s.Store.Get("key")
	if s.NoError(err) {
		s.True(ok)
		s.True(written[value], "unexpected value %q", value)
	}
}
