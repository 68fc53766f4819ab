// Package main is the entry point for the site server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/sitekit/internal/adapters/http"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/sitekit/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/sitekit/internal/adapters/clients/presence"
	"github.com/jsamuelsen11/sitekit/internal/app"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/health"
	"github.com/jsamuelsen11/sitekit/internal/platform/httpclient"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
	"github.com/jsamuelsen11/sitekit/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	userAgent             = "sitekit/1.0"
)

// Downstream names. They label client traces, metrics and readiness checks.
const (
	serviceCMS   = "cms"
	serviceStore = "store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, serviceCMS))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, serviceStore))
	registry.Register(do.MustInvoke[*presence.Stream](injector))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Close the Redis pool once no stream can use it.
	if err := do.MustInvoke[*redis.Client](injector).Close(); err != nil {
		logger.Error("redis close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, telemetry.MeterScope)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerClients(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

// registerClients wires the outbound adapters: one resilient HTTP client per
// downstream, the anti-corruption layer on top of each, and the Redis stream.
func registerClients(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, serviceCMS, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.CMS.Client, serviceCMS, metrics, logger,
			httpclient.WithBearerToken(cfg.CMS.Token),
			httpclient.WithUserAgent(userAgent),
		), nil
	})

	do.ProvideNamed(injector, serviceStore, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Store.Client, serviceStore, metrics, logger,
			httpclient.WithBearerToken(cfg.Store.Token),
			httpclient.WithUserAgent(userAgent),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContentClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, serviceCMS)
		return acl.NewCMSClient(client, &cfg.CMS, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StoreClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, serviceStore)
		return acl.NewDocumentStoreClient(client, &cfg.Store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*presence.Stream, error) {
		client := do.MustInvoke[*redis.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return presence.NewStream(client, &cfg.Redis, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EventStream, error) {
		return do.MustInvoke[*presence.Stream](i), nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.ContentService, error) {
		cms := do.MustInvoke[ports.ContentClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewContentService(cms, &cfg.Site, &cfg.Listing, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DashboardService, error) {
		store := do.MustInvoke[ports.StoreClient](i)
		stream := do.MustInvoke[ports.EventStream](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewDashboardService(store, stream, &cfg.Dashboard, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		content := do.MustInvoke[ports.ContentService](i)
		dashboard := do.MustInvoke[ports.DashboardService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)

		return adapthttp.Handlers{
			Content:  handlers.NewContentHandler(content),
			Contact:  handlers.NewContactHandler(content),
			SEO:      handlers.NewSEOHandler(content),
			Admin:    handlers.NewAdminHandler(dashboard),
			Realtime: handlers.NewRealtimeHandler(dashboard, cfg.Redis.HeartbeatInterval),
			Health:   handlers.NewHealthHandler(registry, serviceCMS),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		stack := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		)
		return adapthttp.NewRouter(h, cfg.Server.RequestTimeout, stack), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
