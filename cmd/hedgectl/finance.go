// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"

	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/urfave/cli"
)

var asOfFlag = cli.StringFlag{
	Name:  "as-of-date",
	Usage: "valuation date, YYYY-MM-DD",
}

var cashflowsCommand = cli.Command{
	Name:  "cashflows",
	Usage: "list, record, and fetch cashflows",
	Subcommands: []cli.Command{
		{
			Name:  "list",
			Usage: "list all cashflows",
			Action: func(c *cli.Context) error {
				return run(sess.Client.Cashflows)
			},
		},
		postCommand("create", "record a cashflow", (*restclient.Client).CreateCashflow),
		{
			Name:  "get",
			Usage: "fetch a cashflow",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{
					Name:  "underscore",
					Value: "1",
					Usage: `value of the required "_" query parameter`,
				},
			},
			Action: func(c *cli.Context) error {
				values, err := required(c, "id", "underscore")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.Cashflow(ctx, values[0], values[1])
				})
			},
		},
	},
}

var cashflowCommand = cli.Command{
	Name:  "cashflow",
	Usage: "cashflow analytics, baselines, and ledger",
	Subcommands: []cli.Command{
		{
			Name:  "analytic",
			Usage: "projected cashflows as of a date",
			Flags: []cli.Flag{asOfFlag},
			Action: func(c *cli.Context) error {
				values, err := required(c, "as-of-date")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.CashflowAnalytic(ctx, values[0])
				})
			},
		},
		{
			Name:  "baseline",
			Usage: "fetch the baseline snapshot as of a date",
			Flags: []cli.Flag{asOfFlag},
			Action: func(c *cli.Context) error {
				values, err := required(c, "as-of-date")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.BaselineSnapshot(ctx, values[0])
				})
			},
		},
		postCommand("create-baseline", "freeze a cashflow baseline", (*restclient.Client).CreateBaselineSnapshot),
		{
			Name:  "ledger",
			Usage: "ledger entries of a source event",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "source-event-id", Usage: "source event identifier"},
				cli.StringFlag{Name: "source-event-type", Usage: "source event type"},
			},
			Action: func(c *cli.Context) error {
				values, err := required(c, "source-event-id")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.LedgerByEvent(ctx, values[0], c.String("source-event-type"))
				})
			},
		},
		{
			Name:  "contract-ledger",
			Usage: "ledger entries of a hedge contract",
			Flags: []cli.Flag{
				idFlag,
				cli.StringFlag{Name: "start", Usage: "first date, YYYY-MM-DD"},
				cli.StringFlag{Name: "end", Usage: "last date, YYYY-MM-DD"},
			},
			Action: func(c *cli.Context) error {
				values, err := required(c, "id")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.LedgerForContract(ctx, values[0], c.String("start"), c.String("end"))
				})
			},
		},
	},
}

var periodFlags = []cli.Flag{
	cli.StringFlag{Name: "entity-type", Usage: "kind of entity, such as order or hedge_contract"},
	cli.StringFlag{Name: "entity-id", Usage: "identifier of the entity"},
	cli.StringFlag{Name: "period-start", Usage: "first date of the period"},
	cli.StringFlag{Name: "period-end", Usage: "last date of the period"},
}

// periodAction builds a P&L action over an entity and period, all
// four of which are required.
func periodAction(fn func(*restclient.Client, context.Context, string, string, string, string) (restdata.Value, error)) func(*cli.Context) error {
	return func(c *cli.Context) error {
		values, err := required(c, "entity-type", "entity-id")
		if err != nil {
			return err
		}
		period, err := required(c, "period-start", "period-end")
		if err != nil {
			return err
		}
		return run(func(ctx context.Context) (restdata.Value, error) {
			return fn(sess.Client, ctx, values[0], values[1], period[0], period[1])
		})
	}
}

var plCommand = cli.Command{
	Name:  "pl",
	Usage: "profit and loss",
	Subcommands: []cli.Command{
		{
			Name:   "get",
			Usage:  "P&L of an entity over a period",
			Flags:  periodFlags,
			Action: periodAction((*restclient.Client).PL),
		},
		{
			Name:   "snapshot",
			Usage:  "stored P&L snapshot of an entity over a period",
			Flags:  periodFlags,
			Action: periodAction((*restclient.Client).PLSnapshot),
		},
		postCommand("create-snapshot", "store a P&L snapshot", (*restclient.Client).CreatePLSnapshot),
	},
}

// mtmByIDCommand builds an MTM command for an object named by --id.
func mtmByIDCommand(name, usage string, fn func(*restclient.Client, context.Context, string, string) (restdata.Value, error)) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{idFlag, asOfFlag},
		Action: func(c *cli.Context) error {
			values, err := required(c, "id", "as-of-date")
			if err != nil {
				return err
			}
			return run(func(ctx context.Context) (restdata.Value, error) {
				return fn(sess.Client, ctx, values[0], values[1])
			})
		},
	}
}

var mtmCommand = cli.Command{
	Name:  "mtm",
	Usage: "mark-to-market valuations",
	Subcommands: []cli.Command{
		mtmByIDCommand("hedge-contract", "value a hedge contract", (*restclient.Client).MTMForHedgeContract),
		mtmByIDCommand("order", "value an order", (*restclient.Client).MTMForOrder),
		{
			Name:  "snapshot",
			Usage: "stored valuation of an object",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "object-type", Usage: "hedge_contract or order"},
				cli.StringFlag{Name: "object-id", Usage: "identifier of the object"},
				asOfFlag,
			},
			Action: func(c *cli.Context) error {
				values, err := required(c, "object-type", "object-id", "as-of-date")
				if err != nil {
					return err
				}
				return run(func(ctx context.Context) (restdata.Value, error) {
					return sess.Client.MTMSnapshot(ctx, values[0], values[1], values[2])
				})
			},
		},
	},
}
