package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/blogdesk/internal/blog"
	"github.com/2beens/blogdesk/internal/cache"
	"github.com/2beens/blogdesk/internal/config"
	"github.com/2beens/blogdesk/internal/logging"
	"github.com/2beens/blogdesk/internal/share"
	"github.com/2beens/blogdesk/internal/telemetry/metrics"
	"github.com/2beens/blogdesk/internal/telemetry/tracing"
	"github.com/2beens/blogdesk/internal/ui"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogsPath:         cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "blogdesk",
	})
	log.Warnf("---->> running in [%s] environment", cfg.Environment)
	log.Debugf("using blog service: [%s]", cfg.ApiBaseURL)

	if err := run(cfg); err != nil {
		log.Errorf("blogdesk: %s", err)
		fmt.Fprintf(os.Stderr, "blogdesk: %s\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	}
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled)
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("blogdesk", "client", promRegistry)
	metricsServer := metrics.Serve(cfg.MetricsAddr, promRegistry)

	queryCache := cache.NewQueryCache(cache.Config{SizeMB: cfg.CacheSizeMB}, metricsManager)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		metricsManager.GaugeLifeSignal.Set(0)
		queryCache.Close()
		otelShutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		err = multierr.Append(err, metricsServer.Shutdown(shutdownCtx))

		sentry.Flush(2 * time.Second)
		log.Infoln("blogdesk stopped")
	}()

	httpClient := tracing.NewTracedHttpClient(cfg.RequestTimeout.Duration)
	blogApi := blog.NewApi(cfg.ApiBaseURL, httpClient, blog.WithMetrics(metricsManager))
	shareService := share.NewService(
		share.NewCommandSharer(cfg.ShareCommand),
		share.SystemClipboard(),
		metricsManager,
	)

	shell := ui.NewShell(&ui.Deps{
		Ctx:          ctx,
		Api:          blogApi,
		Cache:        queryCache,
		StaleTime:    cfg.StaleTime.Duration,
		Share:        shareService,
		ShareBaseURL: cfg.ShareBaseURL,
		Metrics:      metricsManager,
	})

	metricsManager.GaugeLifeSignal.Set(1)
	log.Infoln("blogdesk started")

	program := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, runErr := program.Run(); runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}
