// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "HEDGESTUB"

// Config holds the stub server's settings.  Command-line flags that
// are given explicitly override it.
type Config struct {
	HTTP        string `yaml:"http" envconfig:"HTTP"`
	LogRequests bool   `yaml:"log_requests" envconfig:"LOG_REQUESTS"`
	LogLevel    string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// DefaultConfig is used for anything neither the file nor the
// environment sets.
var DefaultConfig = Config{
	HTTP: ":8000",
}

// LoadConfig starts from DefaultConfig, reads filename if it is not
// empty, and then applies HEDGESTUB_* environment variables.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig
	if filename != "" {
		bytes, err := ioutil.ReadFile(filename)
		if err != nil {
			return cfg, err
		}
		if err = yaml.UnmarshalStrict(bytes, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %v", filename, err)
		}
	}
	err := envconfig.Process(EnvPrefix, &cfg)
	return cfg, err
}
