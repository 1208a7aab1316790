package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STOREFRONT"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv          = "STOREFRONT_APP_ENV"
	EnvLogLevel        = "STOREFRONT_LOG_LEVEL"
	EnvStorageBackend  = "STOREFRONT_STORAGE_BACKEND"
	EnvStorageDir      = "STOREFRONT_STORAGE_DIR"
	EnvSQLitePath      = "STOREFRONT_SQLITE_PATH"
	EnvPostgresDSN     = "STOREFRONT_POSTGRES_DSN"
	EnvRedisURL        = "STOREFRONT_REDIS_URL"
	EnvRedisAddr       = "STOREFRONT_REDIS_ADDR"
	EnvCatalogDelay    = "STOREFRONT_CATALOG_LOADING_DELAY"
	EnvAdminEmail      = "STOREFRONT_ADMIN_EMAIL"
	EnvAdminPassword   = "STOREFRONT_ADMIN_PASSWORD"
	EnvStorageFallback = "STOREFRONT_STORAGE_FALLBACK"
)

// Storage backend identifiers accepted by STOREFRONT_STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var validBackends = []string{BackendMemory, BackendFile, BackendSQLite, BackendPostgres, BackendRedis}

type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
	Admin   AdminConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if err := cfg.ensureBackendSettings(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"STOREFRONT_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

type StorageConfig struct {
	Backend  string `envconfig:"STOREFRONT_STORAGE_BACKEND" default:"file"`
	Dir      string `envconfig:"STOREFRONT_STORAGE_DIR" default:".storefront"`
	Fallback bool   `envconfig:"STOREFRONT_STORAGE_FALLBACK" default:"true"`
}

// NormalizedBackend returns the lower-cased backend name.
func (s StorageConfig) NormalizedBackend() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

func (s StorageConfig) validate() error {
	backend := s.NormalizedBackend()
	for _, candidate := range validBackends {
		if candidate == backend {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", EnvStorageBackend, strings.Join(validBackends, ", "), s.Backend)
}

type DBConfig struct {
	SQLitePath  string `envconfig:"STOREFRONT_SQLITE_PATH" default:"storefront.db"`
	PostgresDSN string `envconfig:"STOREFRONT_POSTGRES_DSN"`
	AutoMigrate bool   `envconfig:"STOREFRONT_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"STOREFRONT_DB_MAX_OPEN_CONNS" default:"4"`
	MaxIdleConns    int           `envconfig:"STOREFRONT_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"STOREFRONT_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOREFRONT_REDIS_URL"`
	Address      string        `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password     string        `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOREFRONT_REDIS_POOL_SIZE" default:"4"`
	DialTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOREFRONT_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"STOREFRONT_REDIS_WRITE_TIMEOUT" default:"3s"`
}

type CatalogConfig struct {
	LoadingDelay time.Duration `envconfig:"STOREFRONT_CATALOG_LOADING_DELAY" default:"350ms"`
}

// AdminConfig holds the demo credential pair that grants admin at registration.
type AdminConfig struct {
	Email    string `envconfig:"STOREFRONT_ADMIN_EMAIL" default:"admin@furniture.local"`
	Password string `envconfig:"STOREFRONT_ADMIN_PASSWORD" default:"admin123"`
}

func (c *Config) ensureBackendSettings() error {
	switch c.Storage.NormalizedBackend() {
	case BackendPostgres:
		if c.DB.PostgresDSN == "" {
			return fmt.Errorf("%s is required for the postgres backend", EnvPostgresDSN)
		}
	case BackendRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
		}
	case BackendSQLite:
		if strings.TrimSpace(c.DB.SQLitePath) == "" {
			return fmt.Errorf("%s is required for the sqlite backend", EnvSQLitePath)
		}
	}
	return nil
}
