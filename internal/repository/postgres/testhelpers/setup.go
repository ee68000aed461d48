package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Schema string
	Logger *zap.Logger
}

// SetupSQLiteDB открывает in-memory SQLite. Запросы каталога переносимы,
// поэтому юнит-тесты репозитория не требуют PostgreSQL.
func SetupSQLiteDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// in-memory база живёт в одном соединении
	db.SetMaxOpenConns(1)

	return &TestDB{
		DB:     db,
		Schema: "main",
		Logger: zap.NewNop(),
	}
}

// SetupPostgresDB подключается к тестовому PostgreSQL или пропускает тест
func SetupPostgresDB(t *testing.T) *TestDB {
	t.Helper()

	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "landslide_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=2",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	return &TestDB{
		DB:     db,
		Schema: "public",
		Logger: zap.NewNop(),
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup удаляет таблицы каталога (в порядке, учитывающем внешние ключи)
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	tables := []string{
		"risk_factors",
		"risk_history",
		"risk_zones",
		"regions",
	}

	for _, table := range tables {
		if _, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}

	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
