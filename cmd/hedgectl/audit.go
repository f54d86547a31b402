// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/urfave/cli"
)

var auditCommand = cli.Command{
	Name:  "audit",
	Usage: "search the audit trail",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "entity-type", Usage: "only events about this kind of entity"},
		cli.StringFlag{Name: "entity-id", Usage: "only events about this entity"},
		cli.StringFlag{Name: "start", Usage: "only events at or after this time"},
		cli.StringFlag{Name: "end", Usage: "only events at or before this time"},
		cli.StringFlag{Name: "cursor", Usage: "next_cursor from a previous page"},
		cli.IntFlag{Name: "limit", Usage: "page size"},
		cli.BoolFlag{Name: "follow", Usage: "fetch every page and print all events"},
	},
	Action: func(c *cli.Context) error {
		filter := restdata.AuditFilter{
			EntityType: c.String("entity-type"),
			EntityID:   c.String("entity-id"),
			Start:      c.String("start"),
			End:        c.String("end"),
			Cursor:     c.String("cursor"),
			Limit:      c.Int("limit"),
		}
		if !c.Bool("follow") {
			return run(func(ctx context.Context) (restdata.Value, error) {
				return sess.Client.AuditEvents(ctx, filter)
			})
		}
		return run(func(ctx context.Context) (restdata.Value, error) {
			events, err := sess.Client.AllAuditEvents(ctx, filter)
			if err != nil {
				return restdata.Value{}, err
			}
			return restdata.ValueOf(restdata.AuditEventList{Events: events})
		})
	},
}
