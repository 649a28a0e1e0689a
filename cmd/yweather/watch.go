package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/resolve"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if c.Interval <= 0 {
		err := yweather.Errorf(yweather.EINVALID, "interval must be positive")
		printError(deps, err)
		return err
	}

	if c.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              c.MetricsAddr,
			Handler:           MetricsHandler(deps.Gatherer),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			deps.Logger.Info("metrics server starting", "addr", c.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				deps.Logger.Error("metrics server failed", "err", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	coord := yweather.Coordinate{Lat: c.Lat, Lon: c.Lon}

	ticker := deps.Clock.NewTicker(c.Interval)
	defer ticker.Stop()

	for pass := 1; ; pass++ {
		c.pass(deps, coord)

		if c.Count > 0 && pass >= c.Count {
			return nil
		}

		select {
		case <-deps.Ctx.Done():
			return nil
		case <-ticker.Chan():
		}
	}
}

// pass resolves coord once, records the result and prints a summary line.
// Failures are reported on stderr and do not stop the watch.
func (c *WatchCmd) pass(deps *Dependencies, coord yweather.Coordinate) {
	result := resolve.NewChanSink()
	deps.Resolver.ResolveCoordinate(deps.Ctx, coord, deps.Unit, deps.sink(deps.recording(result)))

	if deps.Ctx.Err() != nil {
		return
	}
	res, err := wait(deps, result)
	if err != nil {
		return
	}

	r := res.Report
	fmt.Fprintf(deps.Stdout, "%s  %s  %d%s, %s\n",
		deps.Clock.Now().Format("15:04:05"),
		r.Location,
		r.Temperature,
		r.Unit.Symbol(),
		r.ConditionText,
	)
}

// MetricsHandler serves the metrics collected by g.
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return mux
}
