package kv

import (
	"context"
	"fmt"

	"github.com/lumastudio/storefront/pkg/config"
	"github.com/lumastudio/storefront/pkg/db"
	"github.com/lumastudio/storefront/pkg/logger"
	"github.com/lumastudio/storefront/pkg/migrate"
	"github.com/lumastudio/storefront/pkg/redis"
)

type closingStore struct {
	Store
	close func() error
}

func (c closingStore) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

// Open builds the backend named by cfg.Storage. With fallback enabled the
// result is wrapped in a Fallback, and a backend that cannot be opened at all
// is replaced by memory.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger, failures FailureRecorder) (Store, error) {
	if logg == nil {
		logg = logger.Nop()
	}
	backend := cfg.Storage.NormalizedBackend()
	primary, err := openBackend(ctx, backend, cfg, logg)
	if err != nil {
		if !cfg.Storage.Fallback {
			return nil, err
		}
		if failures != nil {
			failures.IncPersistFailure("open")
		}
		logg.Warn(logg.WithFields(ctx, map[string]any{"backend": backend, "error": err.Error()}),
			"storage backend unavailable, continuing in memory")
		return newDegraded(logg, failures), nil
	}

	logg.Info(logg.WithField(ctx, "backend", backend), "storage backend ready")
	if !cfg.Storage.Fallback || backend == config.BackendMemory {
		return primary, nil
	}
	return NewFallback(primary, logg, failures), nil
}

func openBackend(ctx context.Context, backend string, cfg *config.Config, logg *logger.Logger) (Store, error) {
	switch backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile:
		return NewFile(cfg.Storage.Dir)
	case config.BackendSQLite, config.BackendPostgres:
		client, err := db.New(ctx, backend, cfg.DB, logg)
		if err != nil {
			return nil, err
		}
		if err := migrate.MaybeRun(ctx, cfg.DB, logg, client); err != nil {
			_ = client.Close()
			return nil, err
		}
		return closingStore{Store: NewSQL(client.DB()), close: client.Close}, nil
	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, err
		}
		return closingStore{Store: NewRedis(client), close: client.Close}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}
