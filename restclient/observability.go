// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"context"

	"github.com/Andreicr1/hedge-control/restdata"
	"golang.org/x/sync/errgroup"
)

// Health retrieves the liveness probe.
func (c *Client) Health(ctx context.Context) (restdata.Value, error) {
	return c.GetJSON(ctx, "/health")
}

// Ready retrieves the readiness probe.
func (c *Client) Ready(ctx context.Context) (restdata.Value, error) {
	return c.GetJSON(ctx, "/ready")
}

// Metrics retrieves the Prometheus text export.
func (c *Client) Metrics(ctx context.Context) (string, error) {
	return c.GetText(ctx, "/metrics")
}

// Observation is the combined result of the three observability
// probes.
type Observation struct {
	Health  restdata.Value
	Ready   restdata.Value
	Metrics string
}

// Observe runs Health, Ready, and Metrics in parallel.  It succeeds
// only if all three do.  The first error observed is returned as soon
// as it arrives, with no partial results; the other requests are not
// cancelled and finish in the background.
func (c *Client) Observe(ctx context.Context) (Observation, error) {
	var (
		g   errgroup.Group
		obs Observation
	)
	// One slot per probe, so late senders never block.
	results := make(chan error, 3)
	probe := func(fn func() error) {
		g.Go(func() error {
			err := fn()
			results <- err
			return err
		})
	}
	probe(func() (err error) {
		obs.Health, err = c.Health(ctx)
		return
	})
	probe(func() (err error) {
		obs.Ready, err = c.Ready(ctx)
		return
	})
	probe(func() (err error) {
		obs.Metrics, err = c.Metrics(ctx)
		return
	})
	go func() {
		_ = g.Wait()
		close(results)
	}()
	for err := range results {
		if err != nil {
			return Observation{}, err
		}
	}
	return obs, nil
}
