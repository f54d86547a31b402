// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"strings"

	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/kelseyhightower/envconfig"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "HEDGECTL"

// Config holds static configuration, from a YAML file overridden by
// HEDGECTL_* environment variables.
type Config struct {
	// APIBaseURL is the statically configured back-office URL.
	APIBaseURL string `yaml:"api_base_url" envconfig:"API_BASE_URL"`

	// Location is the URL the console acts on behalf of.
	Location string `yaml:"location" envconfig:"LOCATION"`

	// Store is the impl[:address] of the durable store.
	Store string `yaml:"store" envconfig:"STORE"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
}

// LoadConfig reads filename, if it is not empty, and then applies the
// environment.
func LoadConfig(filename string) (Config, error) {
	var cfg Config
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

// Override returns a copy of cfg with every non-empty field of other
// replacing the corresponding field.
func (cfg Config) Override(other Config) Config {
	if other.APIBaseURL != "" {
		cfg.APIBaseURL = other.APIBaseURL
	}
	if other.Location != "" {
		cfg.Location = other.Location
	}
	if other.Store != "" {
		cfg.Store = other.Store
	}
	if other.LogLevel != "" {
		cfg.LogLevel = other.LogLevel
	}
	return cfg
}

// LocationURL returns the configured location, with apiBaseURL added
// as its apiBaseUrl query parameter if it is not empty.
func (cfg Config) LocationURL(apiBaseURL string) (string, error) {
	apiBaseURL = strings.TrimSpace(apiBaseURL)
	if apiBaseURL == "" {
		return cfg.Location, nil
	}
	loc, err := url.Parse(cfg.Location)
	if err != nil {
		return "", err
	}
	query := loc.Query()
	query.Set(hedgecontrol.BaseURLParam, apiBaseURL)
	loc.RawQuery = query.Encode()
	return loc.String(), nil
}

// configReport is what "config show" prints.
type configReport struct {
	Config        Config `yaml:"config"`
	Store         string `yaml:"store"`
	Location      string `yaml:"location"`
	StoredBaseURL string `yaml:"stored_base_url"`
	BaseURL       string `yaml:"resolved_base_url"`
}

var configCommand = cli.Command{
	Name:  "config",
	Usage: "inspect or change client configuration",
	Subcommands: []cli.Command{
		{
			Name:   "show",
			Usage:  "print the effective configuration",
			Action: showConfig,
		},
		{
			Name:      "set-base-url",
			Usage:     "remember an API base URL in the durable store",
			ArgsUsage: "URL",
			Action:    setBaseURL,
		},
	},
}

func showConfig(c *cli.Context) error {
	report := configReport{
		Config: sess.Config,
		Store:  sess.Backend.String(),
	}
	if loc := sess.Client.Location(); loc != nil {
		report.Location = loc.String()
	}
	stored, _, err := sess.Store.Get(hedgecontrol.BaseURLParam)
	if err != nil {
		return err
	}
	report.StoredBaseURL = stored
	report.BaseURL = sess.Client.BaseURL()

	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = sess.Console.Out.Write(out)
	return err
}

func setBaseURL(c *cli.Context) error {
	if c.NArg() != 1 {
		return invalid(fmt.Errorf("usage: %s config set-base-url URL", c.App.Name))
	}
	baseURL := strings.TrimSpace(c.Args().First())
	if err := sess.Store.Set(hedgecontrol.BaseURLParam, baseURL); err != nil {
		return err
	}
	fmt.Fprintf(sess.Console.Out, "%s=%s\n", hedgecontrol.BaseURLParam, baseURL)
	return nil
}
