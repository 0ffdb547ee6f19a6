// Package main is the entry point for the seller analytics tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/profitlens/seller-analytics/business/analytics"
	analyticsApp "github.com/profitlens/seller-analytics/business/analytics/app"
	analyticsDI "github.com/profitlens/seller-analytics/business/analytics/di"
	"github.com/profitlens/seller-analytics/business/reconcile"
	reconcileApp "github.com/profitlens/seller-analytics/business/reconcile/app"
	reconcileDI "github.com/profitlens/seller-analytics/business/reconcile/di"
	"github.com/profitlens/seller-analytics/business/reports"
	reportsApp "github.com/profitlens/seller-analytics/business/reports/app"
	reportsDI "github.com/profitlens/seller-analytics/business/reports/di"
	"github.com/profitlens/seller-analytics/business/reports/infra/wbstats"
	"github.com/profitlens/seller-analytics/internal/apm"
	"github.com/profitlens/seller-analytics/internal/config"
	"github.com/profitlens/seller-analytics/internal/di"
	"github.com/profitlens/seller-analytics/internal/health"
	"github.com/profitlens/seller-analytics/internal/logger"
	"github.com/profitlens/seller-analytics/internal/metrics"
	"github.com/profitlens/seller-analytics/internal/monolith"
	"github.com/profitlens/seller-analytics/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const dateLayout = "2006-01-02"

// options collects the command line inputs for one run.
type options struct {
	mode       string
	inputPath  string
	manualPath string
	csvPath    string
	from       string
	to         string
	outPath    string
}

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run in CLI mode with logs (no TUI)")
	mode := flag.String("mode", "analyze", "Operation: analyze, fetch or reconcile")
	inputPath := flag.String("input", "", "Product report file (.json or .csv) for analyze")
	manualPath := flag.String("manual", "", "Manual cost data file (JSON) for analyze")
	csvPath := flag.String("csv", "", "Local report file to reconcile against the API")
	fromDate := flag.String("from", "", "Period start (YYYY-MM-DD), defaults from config")
	toDate := flag.String("to", "", "Period end (YYYY-MM-DD), defaults from config")
	outPath := flag.String("out", "", "Output path, defaults to the export directory")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("seller-analytics %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for scripting
	tuiMode := !*cliMode

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	opts := options{
		mode:       *mode,
		inputPath:  *inputPath,
		manualPath: *manualPath,
		csvPath:    *csvPath,
		from:       *fromDate,
		to:         *toDate,
		outPath:    *outPath,
	}

	if err := run(ctx, *configPath, tuiMode, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, tuiMode bool, opts options) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger (suppress logs in TUI mode)
	logLevel := logger.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		logLevel = logger.LevelDebug
	case "warn":
		logLevel = logger.LevelWarn
	case "error":
		logLevel = logger.LevelError
	}

	var log *logger.Logger
	if tuiMode {
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
		log.Info(ctx, "starting seller analytics",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}
		if cfg.Telemetry.OTLPHeaders != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_HEADERS", cfg.Telemetry.OTLPHeaders)
		}

		provider := apm.Provider(cfg.Telemetry.TraceProvider)
		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(provider, log))
		log.Info(ctx, "tracing initialized",
			"provider", cfg.Telemetry.TraceProvider, "endpoint", cfg.Telemetry.OTLPEndpoint)

		if _, err := metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		); err != nil {
			log.Warn(ctx, "failed to initialize metrics", "error", err)
		} else {
			port := cfg.Telemetry.PrometheusPort
			if port == 0 {
				port = 9090
			}
			go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
			log.Info(ctx, "prometheus metrics server started", "port", port)
		}

		healthPort := cfg.Telemetry.HealthPort
		if healthPort == 0 {
			healthPort = 8081
		}
		healthServer := health.NewServer(healthPort, version)
		if err := healthServer.Start(); err != nil {
			log.Warn(ctx, "failed to start health server", "error", err)
		} else {
			log.Info(ctx, "health server started", "port", healthPort)
		}
		defer healthServer.Stop(ctx)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}

	// Define modules in dependency order
	modules := []monolith.Module{
		&reports.Module{},   // Must be first - provides the aggregator
		&analytics.Module{}, // Profitability calculations
		&reconcile.Module{}, // Depends on reports for aggregation
	}

	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}

	from, to, err := resolvePeriod(cfg, opts)
	if err != nil {
		return err
	}

	runner := &serviceRunner{
		cfg:       cfg,
		opts:      opts,
		from:      from,
		to:        to,
		services:  mono.Services(),
		analyzer:  analyticsDI.GetAnalyzer(mono.Services()),
		fetcher:   reportsDI.GetFetchService(mono.Services()),
		reconcile: reconcileDI.GetService(mono.Services()),
	}

	if tuiMode {
		return ui.Run(runner)
	}
	return runCLI(ctx, cfg, runner, opts, log)
}

// resolvePeriod picks the reporting period from flags, falling back to config.
func resolvePeriod(cfg *config.Config, opts options) (time.Time, time.Time, error) {
	from, err := cfg.Period.FromTime()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period.from: %w", err)
	}
	to, err := cfg.Period.ToTime()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period.to: %w", err)
	}
	if opts.from != "" {
		from, err = time.Parse(dateLayout, opts.from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if opts.to != "" {
		to, err = time.Parse(dateLayout, opts.to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("period end %s is before start %s",
			to.Format(dateLayout), from.Format(dateLayout))
	}
	return from, to, nil
}

// serviceRunner adapts the business services to the TUI Runner interface.
type serviceRunner struct {
	cfg  *config.Config
	opts options
	from time.Time
	to   time.Time

	services  di.ServiceRegistry
	analyzer  *analyticsApp.Analyzer
	fetcher   *reportsApp.FetchService
	reconcile *reconcileApp.Service
}

func (r *serviceRunner) Analyze(ctx context.Context) (*analyticsApp.Analysis, error) {
	if r.opts.inputPath == "" {
		return nil, fmt.Errorf("no product report given, pass -input <file.json|file.csv>")
	}
	analysis, err := r.analyzer.Analyze(ctx, r.opts.inputPath, r.opts.manualPath)
	if err != nil {
		return nil, err
	}
	if err := r.analyzer.Export(ctx, analysis, r.cfg.Export.Dir, r.cfg.Export.Format); err != nil {
		return nil, err
	}
	return analysis, nil
}

func (r *serviceRunner) Fetch(ctx context.Context) (string, int, int, error) {
	outPath := r.opts.outPath
	if outPath == "" {
		outPath = wbstats.DefaultBundlePath(r.cfg.Export.Dir)
	}
	succeeded, failed, err := r.fetcher.Fetch(ctx, r.cfg.API.Reports, r.from, r.to, outPath)
	if err != nil {
		return "", succeeded, failed, err
	}
	return outPath, succeeded, failed, nil
}

func (r *serviceRunner) Reconcile(ctx context.Context) (*reconcileApp.Result, error) {
	if r.opts.csvPath == "" {
		return nil, fmt.Errorf("no local report given, pass -csv <file>")
	}
	result, err := r.reconcile.Reconcile(ctx, r.from, r.to, r.opts.csvPath)
	if err != nil {
		return nil, err
	}
	outPath := r.opts.outPath
	if outPath == "" {
		outPath = filepath.Join(r.cfg.Export.Dir,
			"reconciliation_"+time.Now().Format("20060102_150405")+".json")
	}
	if err := r.reconcile.Save(ctx, result, outPath); err != nil {
		return nil, err
	}
	return result, nil
}

func runCLI(ctx context.Context, cfg *config.Config, runner *serviceRunner, opts options, log *logger.Logger) error {
	switch opts.mode {
	case "analyze":
		analysis, err := runner.Analyze(ctx)
		if err != nil {
			return err
		}
		analyticsDI.GetReporter(runner.services).Report(analysis)
		log.Info(ctx, "analysis exported", "dir", cfg.Export.Dir, "format", cfg.Export.Format)
		return nil

	case "fetch":
		path, succeeded, failed, err := runner.Fetch(ctx)
		if err != nil {
			return err
		}
		log.Info(ctx, "reports downloaded",
			"path", path, "succeeded", succeeded, "failed", failed)
		return nil

	case "reconcile":
		result, err := runner.Reconcile(ctx)
		if err != nil {
			return err
		}
		reconcileDI.GetReporter(runner.services).Report(result)
		return nil

	default:
		return fmt.Errorf("unknown mode %q, expected analyze, fetch or reconcile", opts.mode)
	}
}
