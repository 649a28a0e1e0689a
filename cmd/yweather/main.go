package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/yweather"
	ywhttp "github.com/fwojciec/yweather/http"
	"github.com/fwojciec/yweather/pool"
	ywprom "github.com/fwojciec/yweather/prometheus"
	"github.com/fwojciec/yweather/resolve"
	ywslog "github.com/fwojciec/yweather/slog"
	"github.com/fwojciec/yweather/sqlite"
	ywxml "github.com/fwojciec/yweather/xml"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is not an error; the environment may be set already.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db and YWEATHER_DB are unset.
	DBPath string

	// SQLite database used by the observation store.
	DB *sqlite.DB

	// Overrides for end-to-end testing. Nil values use real implementations.
	Transport yweather.Transport
	Clock     clockwork.Clock
	Registry  *prometheus.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("yweather"),
		kong.Description("Weather reports for coordinates and WOEIDs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'yweather --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	unit, err := yweather.ParseUnit(cli.Unit)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", yweather.ErrorMessage(err))
		return err
	}
	deps.Unit = unit

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Verbose = cli.Verbose

	deps.Clock = m.Clock
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	registry := m.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	deps.Metrics = ywprom.NewMetrics(registry)
	deps.Gatherer = registry

	if needsDB(cmd, cli) {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set YWEATHER_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Observations = sqlite.NewObservationService(m.DB, deps.Clock)
	}

	executor := pool.NewExecutor(cli.Concurrency)
	defer executor.Wait()

	deps.Resolver = m.newResolver(cli, executor, deps)
	if cli.AppID != "" {
		if err := deps.Resolver.Configure(cli.AppID); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// newResolver wires the transport and extractor stack.
func (m *Main) newResolver(cli *CLI, executor yweather.Executor, deps *Dependencies) *resolve.Resolver {
	var transport yweather.Transport = m.Transport
	if transport == nil {
		transport = ywhttp.NewTransport(
			ywhttp.WithTimeout(cli.Timeout),
			ywhttp.WithUserAgent("yweather"),
		)
	}
	transport = ywprom.NewInstrumentedTransport(transport, deps.Metrics)

	extractor := ywxml.NewExtractor()
	var locations yweather.LocationExtractor = extractor
	var weather yweather.WeatherExtractor = extractor

	if cli.Verbose {
		transport = ywslog.NewLoggingTransport(transport, deps.Logger)
		logged := ywslog.NewLoggingExtractor(locations, weather, deps.Logger)
		locations, weather = logged, logged
	}

	var opts []resolve.Option
	if cli.GeocodeURL != "" {
		opts = append(opts, resolve.WithGeocodeEndpoint(cli.GeocodeURL))
	}
	if cli.WeatherURL != "" {
		opts = append(opts, resolve.WithWeatherEndpoint(cli.WeatherURL))
	}

	return resolve.NewResolver(transport, executor, locations, weather, opts...)
}

func needsDB(cmd string, cli *CLI) bool {
	switch strings.Fields(cmd)[0] {
	case "history", "watch":
		return true
	case "now":
		return cli.Now.Save
	case "woeid":
		return cli.Woeid.Save
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "yweather.db"
	}
	dir := filepath.Join(home, ".yweather")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "yweather.db")
}
