package migrate

import (
	"context"
	"fmt"

	"github.com/lumastudio/storefront/pkg/config"
	"github.com/lumastudio/storefront/pkg/db"
	"github.com/lumastudio/storefront/pkg/logger"
)

// MaybeRun brings the kv_entries schema up to date when auto-migrate is on.
func MaybeRun(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, client *db.Client) error {
	if !cfg.AutoMigrate {
		return nil
	}
	sqlDB, err := client.SQLDB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithField(ctx, "driver", client.Driver())
	if err := Up(ctx, sqlDB, client.Driver()); err != nil {
		return fmt.Errorf("applying state schema: %w", err)
	}
	version, err := Version(sqlDB, client.Driver())
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	logg.Info(logg.WithField(ctx, "schema_version", version), "state schema ready")
	return nil
}
