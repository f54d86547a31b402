// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"testing"

	"github.com/Andreicr1/hedge-control/hedgecontrol/storetest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic store tests against a fresh memory store.
type Suite struct {
	storetest.Suite
}

func (s *Suite) SetupTest() {
	s.Store = New()
}

func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}
