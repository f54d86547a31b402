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

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "hedgectl")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "hedgectl.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
api_base_url: https://api.example.com
location: https://acme.github.io/
store: memory
log_level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		APIBaseURL: "https://api.example.com",
		Location:   "https://acme.github.io/",
		Store:      "memory",
		LogLevel:   "debug",
	}, cfg)
}

func TestLoadConfigEnvironment(t *testing.T) {
	path := writeConfig(t, "api_base_url: https://file.example.com\nstore: memory\n")
	t.Setenv("HEDGECTL_API_BASE_URL", "https://env.example.com")
	t.Setenv("HEDGECTL_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigNoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Store)

	_, err = LoadConfig(filepath.Join(os.TempDir(), "no", "such", "hedgectl.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "api_base_uri: https://typo.example.com\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	cfg := Config{APIBaseURL: "a", Location: "l", Store: "memory", LogLevel: "info"}
	assert.Equal(t,
		Config{APIBaseURL: "a", Location: "l2", Store: "memory", LogLevel: "debug"},
		cfg.Override(Config{Location: "l2", LogLevel: "debug"}))
}

func TestLocationURL(t *testing.T) {
	cfg := Config{Location: "https://acme.github.io/console?tab=orders"}

	loc, err := cfg.LocationURL("")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.github.io/console?tab=orders", loc)

	loc, err = cfg.LocationURL(" https://api.example.com ")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.github.io/console?apiBaseUrl=https%3A%2F%2Fapi.example.com&tab=orders", loc)

	loc, err = Config{}.LocationURL("https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "?apiBaseUrl=https%3A%2F%2Fapi.example.com", loc)
}
