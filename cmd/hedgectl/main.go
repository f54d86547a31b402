// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package hedgectl provides a command-line console for the Hedge
// Control back office.
//
// The API base URL comes from, in order, --api-base-url (which is
// remembered in the durable store for later runs), the configuration
// file or HEDGECTL_API_BASE_URL, and the remembered value.  With none
// of these, requests go to the origin of --location.
package main

import (
	"context"
	"io/ioutil"
	"os"
	"strings"

	"github.com/Andreicr1/hedge-control/backend"
	"github.com/Andreicr1/hedge-control/console"
	"github.com/Andreicr1/hedge-control/hedgecontrol"
	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// session is the state shared by every command, set up in the app's
// Before hook.
type session struct {
	Config  Config
	Backend backend.Backend
	Store   hedgecontrol.Store
	Client  *restclient.Client
	Console console.Console
}

var sess session

func newApp() *cli.App {
	sess = session{}
	app := cli.NewApp()
	app.Name = "hedgectl"
	app.Usage = "work with the Hedge Control back office"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "YAML configuration file",
			EnvVar: "HEDGECTL_CONFIG",
		},
		cli.StringFlag{
			Name:   "location",
			Usage:  "URL the console acts on behalf of",
			EnvVar: "HEDGECTL_LOCATION",
		},
		cli.StringFlag{
			Name:  "api-base-url",
			Usage: "base URL of the back office, remembered for later runs",
		},
		cli.StringFlag{
			Name:  "store",
			Usage: "impl[:address] of the durable store (memory, file, postgres)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "logging level (debug, info, warn, error)",
		},
	}
	app.Commands = []cli.Command{
		auditCommand,
		exposuresCommand,
		ordersCommand,
		rfqCommand,
		contractsCommand,
		linkagesCommand,
		cashflowsCommand,
		cashflowCommand,
		plCommand,
		mtmCommand,
		marketDataCommand,
		scenarioCommand,
		observabilityCommand,
		configCommand,
	}
	app.Before = setup
	return app
}

func setup(c *cli.Context) error {
	cfg, err := LoadConfig(c.GlobalString("config"))
	if err != nil {
		return err
	}
	cfg = cfg.Override(Config{
		Location: c.GlobalString("location"),
		Store:    c.GlobalString("store"),
		LogLevel: c.GlobalString("log-level"),
	})
	sess.Config = cfg

	if cfg.LogLevel != "" {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
	}

	sess.Backend = backend.Backend{Implementation: "file"}
	if cfg.Store != "" {
		if err = sess.Backend.Set(cfg.Store); err != nil {
			return err
		}
	}
	sess.Store, err = sess.Backend.Store()
	if err != nil {
		return err
	}

	location, err := cfg.LocationURL(c.GlobalString("api-base-url"))
	if err != nil {
		return err
	}
	sess.Client, err = restclient.New(location, sess.Store)
	if err != nil {
		return err
	}
	sess.Client.SetStaticBaseURL(cfg.APIBaseURL)
	sess.Client.Logger = logrus.StandardLogger()

	sess.Console = console.Console{Out: c.App.Writer, Err: c.App.ErrWriter}
	if sess.Console.Err == nil {
		sess.Console.Err = os.Stderr
	}
	return nil
}

// run performs one request and prints its outcome.  A failed request
// has already been printed, so the returned error only sets the exit
// status.
func run(fn func(ctx context.Context) (restdata.Value, error)) error {
	err := sess.Console.Run(func() (restdata.Value, error) {
		return fn(context.Background())
	})
	if err != nil {
		return cli.NewExitError("", 1)
	}
	return nil
}

// invalid reports a problem with the command line itself.
func invalid(err error) error {
	return cli.NewExitError(err.Error(), 2)
}

// required fetches command flags that must all be non-blank.  The
// error names every flag in the group.
func required(c *cli.Context, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = c.String(name)
	}
	values, err := console.RequiredAll(names, values...)
	if err != nil {
		return nil, invalid(err)
	}
	return values, nil
}

// body reads the --body flag as a JSON request body.  "-" reads
// standard input.
func body(c *cli.Context) (restdata.Value, error) {
	text := c.String("body")
	if strings.TrimSpace(text) == "-" {
		bytes, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return restdata.Value{}, err
		}
		text = string(bytes)
	}
	value, err := console.Body(text)
	if err != nil {
		return restdata.Value{}, invalid(err)
	}
	return value, nil
}

var bodyFlag = cli.StringFlag{
	Name:  "body",
	Usage: "JSON request body, or - for standard input",
}

var idFlag = cli.StringFlag{
	Name:  "id",
	Usage: "identifier of the object",
}

// postCommand builds a command that sends --body to a client method.
func postCommand(name, usage string, fn func(*restclient.Client, context.Context, interface{}) (restdata.Value, error)) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{bodyFlag},
		Action: func(c *cli.Context) error {
			in, err := body(c)
			if err != nil {
				return err
			}
			return run(func(ctx context.Context) (restdata.Value, error) {
				return fn(sess.Client, ctx, in)
			})
		},
	}
}

// getByIDCommand builds a command that fetches the object named by
// --id with a client method.
func getByIDCommand(name, usage string, fn func(*restclient.Client, context.Context, string) (restdata.Value, error)) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{idFlag},
		Action: func(c *cli.Context) error {
			id, err := console.Required("id", c.String("id"))
			if err != nil {
				return invalid(err)
			}
			return run(func(ctx context.Context) (restdata.Value, error) {
				return fn(sess.Client, ctx, id)
			})
		},
	}
}

func main() {
	newApp().RunAndExitOnError()
}
