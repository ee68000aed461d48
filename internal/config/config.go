package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Источники каталога регионов
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceYAML     = "yaml"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type CatalogConfig struct {
	Source        string
	File          string
	DefaultRegion string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Schema          string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	DatasetCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
}

// Load читает конфигурацию из .env и переменных окружения.
// Отсутствие .env не ошибка: в контейнере всё приходит из окружения.
func Load() (*Config, error) {
	return LoadFile(".env")
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Catalog: CatalogConfig{
			Source:        strings.ToLower(v.GetString("CATALOG_SOURCE")),
			File:          v.GetString("CATALOG_FILE"),
			DefaultRegion: v.GetString("DEFAULT_REGION"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			Schema:          v.GetString("DB_SCHEMA"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			DatasetCacheTTL: time.Duration(v.GetInt("DATASET_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(v.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			TTL:           time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Set default values if not provided
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "production"
	}
	if c.Server.AllowOrigins == "" {
		c.Server.AllowOrigins = "http://localhost:3000,http://localhost:5173"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceBuiltin
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Schema == "" {
		c.Database.Schema = "public"
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = 5
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Cache.DatasetCacheTTL == 0 {
		c.Cache.DatasetCacheTTL = time.Hour
	}
	if c.Cache.StatsCacheTTL == 0 {
		c.Cache.StatsCacheTTL = time.Hour
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 2 * time.Hour
	}
	if c.Session.SweepInterval == 0 {
		c.Session.SweepInterval = time.Minute
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Worker.ConsumerGroup == "" {
		c.Worker.ConsumerGroup = "analysis-cache-warmers"
	}
	if c.Worker.StreamReadTimeout == 0 {
		c.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
}

// Validate проверяет согласованность настроек источника каталога
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceBuiltin:
	case CatalogSourceYAML:
		if c.Catalog.File == "" {
			return fmt.Errorf("CATALOG_FILE is required for catalog source %q", c.Catalog.Source)
		}
	case CatalogSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for catalog source %q", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
