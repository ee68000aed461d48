package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, CatalogSourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, "public", cfg.Database.Schema)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.DatasetCacheTTL)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)
	assert.Equal(t, "analysis-cache-warmers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 5*time.Second, cfg.Worker.StreamReadTimeout)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	path := writeEnv(t, `API_HOST=127.0.0.1
API_PORT=9090
LOG_LEVEL=debug
CATALOG_SOURCE=YAML
CATALOG_FILE=/etc/landslide/regions.yaml
DEFAULT_REGION=ooty
REDIS_ENABLED=true
DATASET_CACHE_TTL=60
SESSION_TTL=300
WORKER_STREAM_READ_TIMEOUT=250
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, CatalogSourceYAML, cfg.Catalog.Source)
	assert.Equal(t, "/etc/landslide/regions.yaml", cfg.Catalog.File)
	assert.Equal(t, "ooty", cfg.Catalog.DefaultRegion)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.DatasetCacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.StreamReadTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"builtin", Config{Catalog: CatalogConfig{Source: CatalogSourceBuiltin}}, false},
		{"yaml without file", Config{Catalog: CatalogConfig{Source: CatalogSourceYAML}}, true},
		{"yaml with file", Config{Catalog: CatalogConfig{Source: CatalogSourceYAML, File: "regions.yaml"}}, false},
		{"postgres without host", Config{Catalog: CatalogConfig{Source: CatalogSourcePostgres}}, true},
		{"postgres", Config{
			Catalog:  CatalogConfig{Source: CatalogSourcePostgres},
			Database: DatabaseConfig{Host: "db", DBName: "landslide"},
		}, false},
		{"unknown", Config{Catalog: CatalogConfig{Source: "s3"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
