// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"

	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/urfave/cli"
)

var exposuresCommand = cli.Command{
	Name:  "exposures",
	Usage: "show exposure positions",
	Subcommands: []cli.Command{
		{
			Name:  "commercial",
			Usage: "exposures arising from orders",
			Action: func(c *cli.Context) error {
				return run(sess.Client.CommercialExposures)
			},
		},
		{
			Name:  "global",
			Usage: "net exposure position",
			Action: func(c *cli.Context) error {
				return run(sess.Client.GlobalExposures)
			},
		},
	},
}

var ordersCommand = cli.Command{
	Name:  "orders",
	Usage: "create and fetch sales and purchase orders",
	Subcommands: []cli.Command{
		postCommand("create-sales", "create a sales order", (*restclient.Client).CreateSalesOrder),
		postCommand("create-purchase", "create a purchase order", (*restclient.Client).CreatePurchaseOrder),
		getByIDCommand("get", "fetch an order", (*restclient.Client).Order),
	},
}

// idBodyCommand builds a command that sends --body to the object
// named by --id.
func idBodyCommand(name, usage string, fn func(*restclient.Client, context.Context, string, interface{}) (restdata.Value, error)) cli.Command {
	return cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{idFlag, bodyFlag},
		Action: func(c *cli.Context) error {
			values, err := required(c, "id")
			if err != nil {
				return err
			}
			in, err := body(c)
			if err != nil {
				return err
			}
			return run(func(ctx context.Context) (restdata.Value, error) {
				return fn(sess.Client, ctx, values[0], in)
			})
		},
	}
}

var rfqCommand = cli.Command{
	Name:  "rfq",
	Usage: "run the request-for-quote lifecycle",
	Subcommands: []cli.Command{
		postCommand("create", "open a request for quotes", (*restclient.Client).CreateRFQ),
		getByIDCommand("get", "fetch an RFQ", (*restclient.Client).RFQ),
		idBodyCommand("quote", "record a quote against an RFQ", (*restclient.Client).CreateQuote),
		getByIDCommand("ranking", "rank an RFQ's quotes", (*restclient.Client).RFQRanking),
		getByIDCommand("trade-ranking", "rank an RFQ's quotes per trade", (*restclient.Client).RFQTradeRanking),
		idBodyCommand("award", "award an RFQ", (*restclient.Client).AwardRFQ),
		idBodyCommand("refresh", "ask for requotes", (*restclient.Client).RefreshRFQ),
		idBodyCommand("reject", "reject an RFQ", (*restclient.Client).RejectRFQ),
	},
}

var contractsCommand = cli.Command{
	Name:  "contracts",
	Usage: "book and fetch hedge contracts",
	Subcommands: []cli.Command{
		postCommand("create", "book a hedge contract", (*restclient.Client).CreateHedgeContract),
		getByIDCommand("get", "fetch a hedge contract", (*restclient.Client).HedgeContract),
		idBodyCommand("settle", "settle a hedge contract", (*restclient.Client).SettleContract),
	},
}

var linkagesCommand = cli.Command{
	Name:  "linkages",
	Usage: "link hedge contracts to orders",
	Subcommands: []cli.Command{
		postCommand("create", "create a linkage", (*restclient.Client).CreateLinkage),
		getByIDCommand("get", "fetch a linkage", (*restclient.Client).Linkage),
	},
}

var marketDataCommand = cli.Command{
	Name:  "market-data",
	Usage: "load market prices",
	Subcommands: []cli.Command{
		postCommand("westmetall-ingest", "ingest Westmetall aluminum cash settlement prices",
			(*restclient.Client).IngestWestmetallCashSettlement),
	},
}

var scenarioCommand = cli.Command{
	Name:  "scenario",
	Usage: "run what-if scenarios",
	Subcommands: []cli.Command{
		postCommand("what-if", "run a what-if scenario", (*restclient.Client).RunWhatIf),
	},
}
