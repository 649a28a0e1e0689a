package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/yweather"
	ywprom "github.com/fwojciec/yweather/prometheus"
	"github.com/fwojciec/yweather/resolve"
	ywslog "github.com/fwojciec/yweather/slog"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Verbose      bool
	Unit         yweather.Unit
	Resolver     *resolve.Resolver
	Observations yweather.ObservationService
	Metrics      *ywprom.Metrics
	Gatherer     prometheus.Gatherer
	Clock        clockwork.Clock
}

// sink decorates next with metrics and, when verbose, logging.
func (d *Dependencies) sink(next yweather.ResultSink) yweather.ResultSink {
	if d.Metrics != nil {
		next = ywprom.NewInstrumentedSink(next, d.Metrics)
	}
	if d.Verbose && d.Logger != nil {
		next = ywslog.NewLoggingSink(next, d.Logger)
	}
	return next
}

// recording wraps next so that delivered reports are stored.
func (d *Dependencies) recording(next yweather.ResultSink) yweather.ResultSink {
	return resolve.NewRecordingSink(d.Ctx, next, d.Observations, func(err error) {
		if d.Logger != nil {
			d.Logger.Warn("failed to store observation", "err", err)
		}
	})
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	AppID       string        `name:"app-id" env:"YWEATHER_APP_ID" help:"Application ID for the geocode endpoint"`
	Unit        string        `short:"u" env:"YWEATHER_UNIT" default:"c" help:"Temperature unit (c or f)"`
	DB          string        `name:"db" env:"YWEATHER_DB" help:"Observation database path"`
	GeocodeURL  string        `name:"geocode-url" env:"YWEATHER_GEOCODE_URL" help:"Geocode endpoint"`
	WeatherURL  string        `name:"weather-url" env:"YWEATHER_WEATHER_URL" help:"Weather endpoint"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
	Concurrency int           `short:"c" default:"4" help:"Document parsing workers"`
	Verbose     bool          `short:"v" help:"Log requests and results to stderr"`

	Now     NowCmd     `cmd:"" help:"Show the weather at a coordinate (use -- before negative values)"`
	Woeid   WoeidCmd   `cmd:"" help:"Show the weather for a WOEID"`
	Batch   BatchCmd   `cmd:"" help:"Show the weather at several coordinates"`
	History HistoryCmd `cmd:"" help:"List or delete recorded observations"`
	Watch   WatchCmd   `cmd:"" help:"Resolve a coordinate periodically and record changes"`
}

// NowCmd is the "now" subcommand.
type NowCmd struct {
	Lat    float64 `arg:"" help:"Latitude"`
	Lon    float64 `arg:"" help:"Longitude"`
	Format string  `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Save   bool    `short:"s" help:"Record the observation"`
}

// WoeidCmd is the "woeid" subcommand.
type WoeidCmd struct {
	Woeid  string `arg:"" help:"Where-on-earth ID"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Save   bool   `short:"s" help:"Record the observation"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Coords   []string `arg:"" name:"coord" help:"Coordinates as lat,lon"`
	Parallel int      `short:"p" default:"4" help:"Coordinates resolved at once"`
	Format   string   `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Woeid  string        `short:"w" help:"Only observations for this WOEID"`
	Since  time.Duration `help:"Only observations newer than this"`
	Limit  int           `short:"n" default:"20" help:"Maximum observations to show"`
	Format string        `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Delete bool          `help:"Delete observations for --woeid"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Lat         float64       `arg:"" help:"Latitude"`
	Lon         float64       `arg:"" help:"Longitude"`
	Interval    time.Duration `short:"i" default:"15m" help:"Time between passes"`
	Count       int           `short:"n" help:"Stop after this many passes (0 runs until interrupted)"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address"`
}
