package migrate

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/lumastudio/storefront/pkg/config"
	"github.com/lumastudio/storefront/pkg/db"
	"github.com/lumastudio/storefront/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestValidateEmbedded(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidateFSRejectsBadFiles(t *testing.T) {
	bad := fstest.MapFS{
		"m/create.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
	}
	require.Error(t, ValidateFS(bad, "m"))

	missingDown := fstest.MapFS{
		"m/20260101000000_x.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")},
	}
	require.Error(t, ValidateFS(missingDown, "m"))

	empty := fstest.MapFS{"m/readme.txt": {Data: []byte("nothing")}}
	require.Error(t, ValidateFS(empty, "m"))
}

func TestUpCreatesKVTable(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)

	require.NoError(t, Up(context.Background(), sqlDB, "sqlite"))
	require.True(t, conn.Migrator().HasTable("kv_entries"))

	version, err := Version(sqlDB, "sqlite")
	require.NoError(t, err)
	require.Equal(t, int64(20260101000000), version)

	// idempotent
	require.NoError(t, Up(context.Background(), sqlDB, "sqlite"))
}

func TestDialect(t *testing.T) {
	got, err := Dialect("sqlite")
	require.NoError(t, err)
	require.Equal(t, "sqlite3", got)

	_, err = Dialect("mysql")
	require.Error(t, err)
}

func TestMaybeRunHonoursFlag(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	client := db.Wrap(conn, db.DriverSQLite)
	ctx := context.Background()

	require.NoError(t, MaybeRun(ctx, config.DBConfig{AutoMigrate: false}, logger.Nop(), client))
	require.False(t, conn.Migrator().HasTable("kv_entries"))

	require.NoError(t, MaybeRun(ctx, config.DBConfig{AutoMigrate: true}, logger.Nop(), client))
	require.True(t, conn.Migrator().HasTable("kv_entries"))
}
