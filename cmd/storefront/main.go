package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/lumastudio/storefront/internal/app"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/views"
	"github.com/lumastudio/storefront/pkg/config"
	"github.com/lumastudio/storefront/pkg/kv"
	"github.com/lumastudio/storefront/pkg/logger"
	"github.com/lumastudio/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"backend": cfg.Storage.NormalizedBackend(),
	})

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	store, err := kv.Open(ctx, cfg, logg, storeMetrics)
	requireResource(ctx, logg, "storage", err)
	defer func() {
		if closer, ok := store.(kv.Closer); ok {
			if err := closer.Close(); err != nil {
				logg.Error(ctx, "failed to close storage", err)
			}
		}
	}()

	shop, err := app.New(app.Params{
		Store:   store,
		Logger:  logg,
		Metrics: storeMetrics,
		Admin:   auth.Credentials{Email: cfg.Admin.Email, Password: cfg.Admin.Password},
	})
	requireResource(ctx, logg, "app", err)
	shop.Load(ctx)
	ctx = logg.WithSessionID(ctx, shop.SessionID())
	logg.Info(ctx, "storefront ready")

	s := &session{
		app:      shop,
		renderer: views.NewRenderer(os.Stdout, cfg.Catalog.LoadingDelay),
		gatherer: registry,
		out:      os.Stdout,
	}
	if cfg.App.IsDev() {
		fmt.Fprint(os.Stdout, helpText)
	}
	if err := run(ctx, s, bufio.NewScanner(os.Stdin)); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "storefront stopped", err)
		os.Exit(1)
	}
	logg.Info(ctx, "storefront shutting down")
}

func run(ctx context.Context, s *session, in *bufio.Scanner) error {
	if err := s.render(ctx, views.Frame{}); err != nil {
		return err
	}
	for {
		fmt.Fprint(s.out, "> ")
		if !in.Scan() {
			return in.Err()
		}
		quit, err := s.handle(ctx, in.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
