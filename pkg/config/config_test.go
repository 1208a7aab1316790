package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %q", cfg.App.Env)
	}
	if cfg.Storage.NormalizedBackend() != BackendFile {
		t.Fatalf("expected file backend by default, got %q", cfg.Storage.Backend)
	}
	if !cfg.Storage.Fallback {
		t.Fatal("expected storage fallback enabled by default")
	}
	if cfg.Catalog.LoadingDelay != 350*time.Millisecond {
		t.Fatalf("expected 350ms loading delay, got %v", cfg.Catalog.LoadingDelay)
	}
	if cfg.Admin.Email != "admin@furniture.local" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin defaults %+v", cfg.Admin)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvStorageBackend, "SQLite")
	t.Setenv(EnvSQLitePath, "/tmp/shop.db")
	t.Setenv(EnvCatalogDelay, "0s")
	t.Setenv(EnvAdminEmail, "root@shop.local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.NormalizedBackend() != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.Storage.Backend)
	}
	if cfg.DB.SQLitePath != "/tmp/shop.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.DB.SQLitePath)
	}
	if cfg.Catalog.LoadingDelay != 0 {
		t.Fatalf("expected zero delay, got %v", cfg.Catalog.LoadingDelay)
	}
	if cfg.Admin.Email != "root@shop.local" {
		t.Fatalf("unexpected admin email %q", cfg.Admin.Email)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvStorageBackend, "s3")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to return an error")
	}
}

func TestLoad_BackendRequirements(t *testing.T) {
	t.Run("postgres needs dsn", func(t *testing.T) {
		t.Setenv(EnvStorageBackend, BackendPostgres)
		if _, err := Load(); err == nil {
			t.Fatal("expected missing dsn error")
		}
	})
	t.Run("redis needs address", func(t *testing.T) {
		t.Setenv(EnvStorageBackend, BackendRedis)
		if _, err := Load(); err == nil {
			t.Fatal("expected missing redis address error")
		}
		t.Setenv(EnvRedisAddr, "localhost:6379")
		if _, err := Load(); err != nil {
			t.Fatalf("expected redis config to load, got %v", err)
		}
	})
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: AppEnvProd}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
