// Package main runs the todo backend: it loads a config profile, installs
// telemetry, wires the service graph with samber/do, seeds the store and
// serves HTTP until SIGINT or SIGTERM.
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

	"github.com/samber/do/v2"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"

	adapthttp "github.com/acclimations/todo-backend/internal/adapters/http"
	"github.com/acclimations/todo-backend/internal/adapters/http/handlers"
	"github.com/acclimations/todo-backend/internal/adapters/http/middleware"
	"github.com/acclimations/todo-backend/internal/adapters/seed"
	"github.com/acclimations/todo-backend/internal/adapters/store/memory"
	"github.com/acclimations/todo-backend/internal/app"
	"github.com/acclimations/todo-backend/internal/platform/config"
	"github.com/acclimations/todo-backend/internal/platform/health"
	"github.com/acclimations/todo-backend/internal/platform/logging"
	"github.com/acclimations/todo-backend/internal/platform/telemetry"
	"github.com/acclimations/todo-backend/internal/ports"
)

const telemetryFlushTimeout = 5 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	profile   string
	configDir string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("todo-server", pflag.ContinueOnError)
	fs.StringVarP(&opts.profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"config profile to load (local, dev, qa, prod); defaults to $APP_PROFILE")
	fs.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml, the profile files and seed data")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.profile == "" {
		return nil, errors.New("a profile is required: pass --profile or set APP_PROFILE (e.g. local, dev, qa, prod)")
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded", slog.String("profile", opts.profile))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	injector, err := wire(cfg, logger)
	if err != nil {
		return err
	}
	if err := seedStore(ctx, injector, cfg.Store.SeedFile, logger); err != nil {
		return err
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// startTelemetry installs the SDK providers when telemetry is enabled. With
// it disabled the OpenTelemetry globals stay no-ops and the returned nil
// *Providers shuts down cleanly.
func startTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetry.Providers, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return telemetry.Start(ctx, telemetry.Settings{
		ServiceName: cfg.ServiceName,
		Exporter:    cfg.Exporter,
		Endpoint:    cfg.Endpoint,
	})
}

// wire registers the service graph. Nothing is built until first invoked.
func wire(cfg *config.Config, logger *slog.Logger) (*do.RootScope, error) {
	metrics, err := telemetry.NewMetrics(otel.GetMeterProvider(), cfg.Telemetry.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(i do.Injector) (*memory.Store, error) {
		store := memory.New()
		if err := do.MustInvoke[*telemetry.Metrics](i).ObserveItems(store.Count); err != nil {
			return nil, err
		}
		return store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		return app.NewTodoService(
			do.MustInvoke[*memory.Store](i),
			logger,
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*memory.Store](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adapthttp.NewRouter(
			handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(otel.GetTracerProvider(), metrics),
			middleware.Logging(logger),
			middleware.Recovery(logger, metrics),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector, nil
}

// seedStore creates the todos in path, which config has already resolved
// against the config directory. An empty path seeds nothing.
func seedStore(ctx context.Context, injector do.Injector, path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	svc, err := do.Invoke[ports.TodoService](injector)
	if err != nil {
		return fmt.Errorf("resolving todo service: %w", err)
	}
	n, err := seed.LoadFile(ctx, path, svc, logger)
	if err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}
	logger.Info("store seeded", slog.String("file", path), slog.Int("todos", n))
	return nil
}
