// Package main runs the story editor service: it loads the profile's
// configuration, wires the dependency graph with samber/do, serves HTTP and
// shuts down cleanly on SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/story-editor/internal/adapters/http"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
	"github.com/jsamuelsen11/story-editor/internal/platform/logging"
	"github.com/jsamuelsen11/story-editor/internal/platform/telemetry"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

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

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	st, err := openStore(ctx, &cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("closing story store", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, st.repo)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	registerHealthChecks(injector, cfg, st.check)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// registerHealthChecks adds the story store and, when notifications are on,
// the render client to the readiness registry.
func registerHealthChecks(injector do.Injector, cfg *config.Config, storeCheck ports.HealthChecker) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(storeCheck)
	if cfg.Notifier.Enabled {
		if checker, ok := do.MustInvoke[ports.ChangeNotifier](injector).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
	}
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

	tc := cfg.Telemetry
	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}
