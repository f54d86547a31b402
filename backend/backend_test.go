// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		Param   string
		Backend Backend
	}{
		{"memory", Backend{Implementation: "memory"}},
		{"file", Backend{Implementation: "file"}},
		{"file:/tmp/state.yaml", Backend{Implementation: "file", Address: "/tmp/state.yaml"}},
		{
			"postgres:postgres://u@localhost/hedge?sslmode=disable",
			Backend{Implementation: "postgres", Address: "postgres://u@localhost/hedge?sslmode=disable"},
		},
	}
	for _, test := range tests {
		var b Backend
		if assert.NoError(t, b.Set(test.Param), test.Param) {
			assert.Equal(t, test.Backend, b, test.Param)
			assert.Equal(t, test.Param, b.String())
		}
	}
}

func TestSetInvalid(t *testing.T) {
	var b Backend
	assert.Error(t, b.Set(""))

	err := b.Set("redis:localhost")
	assert.Equal(t, hedgecontrol.ErrUnknownBackend{Name: "redis"}, err)
}

func TestMemoryStore(t *testing.T) {
	b := Backend{Implementation: "memory"}
	store, err := b.Store()
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", value)
}

func TestFileStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "backend")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	b := Backend{Implementation: "file", Address: filepath.Join(dir, "state.yaml")}
	store, err := b.Store()
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))
	_, err = os.Stat(b.Address)
	assert.NoError(t, err)
}

func TestUnknownStore(t *testing.T) {
	b := Backend{Implementation: "nope"}
	_, err := b.Store()
	assert.Equal(t, hedgecontrol.ErrUnknownBackend{Name: "nope"}, err)
}
