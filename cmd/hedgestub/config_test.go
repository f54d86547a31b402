// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
}

func TestConfigFileAndEnvironment(t *testing.T) {
	dir, err := ioutil.TempDir("", "hedgestub")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "hedgestub.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("http: 127.0.0.1:9000\nlog_requests: true\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{HTTP: "127.0.0.1:9000", LogRequests: true}, cfg)

	t.Setenv("HEDGESTUB_HTTP", ":9100")
	t.Setenv("HEDGESTUB_LOG_LEVEL", "debug")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{HTTP: ":9100", LogRequests: true, LogLevel: "debug"}, cfg)
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	dir, err := ioutil.TempDir("", "hedgestub")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "hedgestub.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("cborrpc: \":5932\"\n"), 0600))

	_, err = LoadConfig(path)
	assert.Error(t, err)
}
