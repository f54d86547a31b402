// Copyright 2016-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package hedgebench provides a load-generation tool for the Hedge
// Control back office, usually pointed at hedgestub.
package main

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Andreicr1/hedge-control/restclient"
	"github.com/Andreicr1/hedge-control/restdata"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type benchWork struct {
	Client      *restclient.Client
	Concurrency int
	Failures    int64
}

// Run calls runner from Concurrency goroutines and waits for all of
// them.
func (bench *benchWork) Run(runner func()) {
	wg := sync.WaitGroup{}
	wg.Add(bench.Concurrency)
	for i := 0; i < bench.Concurrency; i++ {
		go func() {
			defer wg.Done()
			runner()
		}()
	}
	wg.Wait()
}

// Check counts err as a failure, if it is one.
func (bench *benchWork) Check(err error) bool {
	if err != nil {
		atomic.AddInt64(&bench.Failures, 1)
		logrus.WithError(err).Debug("request failed")
		return false
	}
	return true
}

// numbers produces 1 through count on a closed channel.
func numbers(count int) <-chan int {
	ch := make(chan int)
	go func() {
		for i := 1; i <= count; i++ {
			ch <- i
		}
		close(ch)
	}()
	return ch
}

func report(what string, count int, start time.Time) {
	elapsed := time.Since(start)
	logrus.WithFields(logrus.Fields{
		"count":    count,
		"failures": atomic.LoadInt64(&bench.Failures),
		"elapsed":  elapsed,
		"rate":     float64(count) / elapsed.Seconds(),
	}).Info(what)
}

var bench benchWork

var countFlag = cli.IntFlag{
	Name:  "count",
	Value: 100,
	Usage: "number of objects to create",
}

var addOrders = cli.Command{
	Name:  "orders",
	Usage: "create many sales orders",
	Flags: []cli.Flag{countFlag},
	Action: func(c *cli.Context) {
		count := c.Int("count")
		ids := numbers(count)
		start := time.Now()
		bench.Run(func() {
			for range ids {
				_, err := bench.Client.CreateSalesOrder(context.Background(), map[string]interface{}{
					"customer":    uuid.NewV4().String(),
					"quantity_mt": 25,
				})
				bench.Check(err)
			}
		})
		report("created orders", count, start)
	},
}

var runRFQs = cli.Command{
	Name:  "rfq",
	Usage: "run many quote-and-award cycles",
	Flags: []cli.Flag{
		countFlag,
		cli.IntFlag{
			Name:  "quotes",
			Value: 3,
			Usage: "quotes per RFQ",
		},
	},
	Action: func(c *cli.Context) {
		count := c.Int("count")
		quotes := c.Int("quotes")
		ids := numbers(count)
		start := time.Now()
		bench.Run(func() {
			ctx := context.Background()
			for range ids {
				rfq, err := bench.Client.CreateRFQ(ctx, map[string]interface{}{"metal": "aluminum"})
				if !bench.Check(err) {
					continue
				}
				rfqID := rfq.Get("id").Text()
				for q := 0; q < quotes; q++ {
					_, err = bench.Client.CreateQuote(ctx, rfqID, map[string]interface{}{
						"price":    2400 + q,
						"trade_id": uuid.NewV4().String(),
					})
					bench.Check(err)
				}
				ranking, err := bench.Client.RFQRanking(ctx, rfqID)
				if !bench.Check(err) {
					continue
				}
				best := ranking.Get("ranking.0.quote.id").Text()
				if best == "" {
					continue
				}
				_, err = bench.Client.AwardRFQ(ctx, rfqID, map[string]interface{}{"quote_id": best})
				bench.Check(err)
			}
		})
		report("awarded RFQs", count, start)
	},
}

var readAudit = cli.Command{
	Name:  "audit",
	Usage: "read the whole audit trail repeatedly",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "count",
			Value: 10,
			Usage: "number of full reads",
		},
		cli.IntFlag{
			Name:  "limit",
			Value: 100,
			Usage: "page size",
		},
	},
	Action: func(c *cli.Context) {
		count := c.Int("count")
		limit := c.Int("limit")
		ids := numbers(count)
		var events int64
		start := time.Now()
		bench.Run(func() {
			for range ids {
				all, err := bench.Client.AllAuditEvents(context.Background(), restdata.AuditFilter{Limit: limit})
				if bench.Check(err) {
					atomic.AddInt64(&events, int64(len(all)))
				}
			}
		})
		report("read audit trail", count, start)
		logrus.WithField("events", atomic.LoadInt64(&events)).Debug("audit events read")
	},
}

func main() {
	app := cli.NewApp()
	app.Usage = "benchmark the Hedge Control back office"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "api-base-url",
			Value: "http://localhost:8000",
			Usage: "base URL of the back office",
		},
		cli.IntFlag{
			Name:  "concurrency",
			Value: runtime.NumCPU(),
			Usage: "run this many jobs in parallel",
		},
	}
	app.Commands = []cli.Command{
		addOrders,
		runRFQs,
		readAudit,
	}
	app.Before = func(c *cli.Context) (err error) {
		bench.Client, err = restclient.New("", nil)
		if err != nil {
			return
		}
		bench.Client.SetStaticBaseURL(c.String("api-base-url"))
		bench.Concurrency = c.Int("concurrency")
		return
	}
	app.RunAndExitOnError()
}
