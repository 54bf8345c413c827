package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/story-editor/internal/adapters/clients/render"
	adapthttp "github.com/jsamuelsen11/story-editor/internal/adapters/http"
	"github.com/jsamuelsen11/story-editor/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/story-editor/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/seed"
	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/story-editor/internal/app"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
	"github.com/jsamuelsen11/story-editor/internal/platform/health"
	"github.com/jsamuelsen11/story-editor/internal/platform/httpclient"
	"github.com/jsamuelsen11/story-editor/internal/platform/telemetry"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

// storeName is the readiness check that decides whether the service is up.
const storeName = "story-store"

// store is the opened repository, its readiness check and whatever
// releases it.
type store struct {
	repo  ports.StoryRepository
	check ports.HealthChecker
	close func() error
}

func (s *store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore opens the configured driver and applies the seed file, if any.
func openStore(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*store, error) {
	var st store
	switch cfg.Driver {
	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		st = store{repo: repo, check: repo, close: repo.Close}
	default:
		repo := memory.New()
		st = store{repo: repo, check: repo}
	}
	logger.Info("story store ready", slog.String("driver", cfg.Driver))

	if cfg.SeedFile == "" {
		return &st, nil
	}
	n, err := seed.Load(ctx, st.repo, cfg.SeedFile, logger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("seeding story store: %w", err)
	}
	logger.Info("seeded stories", slog.String("file", cfg.SeedFile), slog.Int("created", n))
	return &st, nil
}

func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.ChangeNotifier, error) {
		if !cfg.Notifier.Enabled {
			return render.Noop{}, nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return render.NewClient(httpclient.New(&cfg.Notifier, "render", metrics, logger), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StoryService, error) {
		return app.NewStoryService(
			do.MustInvoke[ports.StoryRepository](i),
			do.MustInvoke[ports.ChangeNotifier](i),
			cfg.Story,
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StoryHandler, error) {
		return handlers.NewStoryHandler(do.MustInvoke[ports.StoryService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), storeName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.StoryHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.AppContext(),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
