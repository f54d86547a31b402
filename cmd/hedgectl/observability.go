// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"fmt"

	"github.com/Andreicr1/hedge-control/console"
	"github.com/urfave/cli"
)

var observabilityCommand = cli.Command{
	Name:  "observability",
	Usage: "check back-office health, readiness, and metrics",
	Action: func(c *cli.Context) error {
		obs, err := sess.Client.Observe(context.Background())
		if err != nil {
			fmt.Fprint(sess.Console.Err, console.FormatError(err))
			return cli.NewExitError("", 1)
		}
		sess.Console.Observation(obs)
		return nil
	},
	Subcommands: []cli.Command{
		{
			Name:  "health",
			Usage: "liveness probe",
			Action: func(c *cli.Context) error {
				return run(sess.Client.Health)
			},
		},
		{
			Name:  "ready",
			Usage: "readiness probe",
			Action: func(c *cli.Context) error {
				return run(sess.Client.Ready)
			},
		},
		{
			Name:  "metrics",
			Usage: "Prometheus metrics export",
			Action: func(c *cli.Context) error {
				text, err := sess.Client.Metrics(context.Background())
				if err != nil {
					fmt.Fprint(sess.Console.Err, console.FormatError(err))
					return cli.NewExitError("", 1)
				}
				fmt.Fprint(sess.Console.Out, text)
				return nil
			},
		},
	},
}
