// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lilithmonodia/winestock-be/internal/adapters/db"
	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_winestock",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_winestock",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	t.Cleanup(database.Close)

	migrator, err := db.NewMigrator(&db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}, TestLogger())
	require.NoError(t, err, "Could not create migrator")
	defer migrator.Close()

	require.NoError(t, migrator.Up(context.Background()), "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_winestock",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Import: config.ImportConfig{
			MaxSizeMB:         20,
			ProcessingTimeout: 5 * time.Minute,
			TempDir:           "/tmp",
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestWine builds a valid wine, optionally customized through overrides.
func CreateTestWine(t *testing.T, overrides ...func(*domain.Wine)) *domain.Wine {
	t.Helper()

	wine, err := domain.NewWine("Chateau Margaux", 2015, 75, "ROUGE", decimal.NewFromInt(450))
	require.NoError(t, err, "Failed to build test wine")

	for _, override := range overrides {
		override(wine)
	}

	return wine
}

// CreateTestWines builds count valid wines sharing the same vintage year, so
// they can be grouped into one assortment.
func CreateTestWines(t *testing.T, count int) []*domain.Wine {
	t.Helper()

	colors := []string{"ROUGE", "BLANC", "ROSE", "CHAMPAGNE"}
	volumes := []float64{75, 150, 37.5, 300}

	wines := make([]*domain.Wine, count)
	for i := 0; i < count; i++ {
		wine, err := domain.NewWine(
			fmt.Sprintf("Test Wine %d", i+1),
			2018,
			volumes[i%len(volumes)],
			colors[i%len(colors)],
			decimal.NewFromInt(int64(20+i*10)),
		)
		require.NoError(t, err, "Failed to build test wine %d", i+1)
		wines[i] = wine
	}

	return wines
}

// CompareWines asserts that two wines match field by field.
func CompareWines(t *testing.T, expected, actual *domain.Wine) {
	t.Helper()

	require.Equal(t, expected.Name(), actual.Name())
	require.Equal(t, expected.Year(), actual.Year())
	require.Equal(t, expected.Volume(), actual.Volume())
	require.Equal(t, expected.Color(), actual.Color())
	require.True(t, expected.Price().Equal(actual.Price()),
		"price mismatch: %s != %s", expected.Price(), actual.Price())
	require.Equal(t, expected.Comment(), actual.Comment())
}

// SeedTestWines inserts wines directly, bypassing the repository layer.
func SeedTestWines(t *testing.T, pool *pgxpool.Pool, wines []*domain.Wine) []int64 {
	t.Helper()

	ctx := context.Background()
	ids := make([]int64, len(wines))

	for i, wine := range wines {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO wine (name, year, volume, color, price, comment)
			VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
			RETURNING wno`,
			wine.Name(), wine.Year(), wine.Volume().Volume(),
			string(wine.Color()), wine.Price(), wine.Comment(),
		).Scan(&id)
		require.NoError(t, err, "Failed to seed wine %q", wine.Name())
		ids[i] = id
	}

	return ids
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"import_jobs",
		"wine",
		"assortment",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// CreateTempFile creates a temporary file for testing
func CreateTempFile(t *testing.T, content []byte, extension string) string {
	t.Helper()

	file, err := os.CreateTemp("", fmt.Sprintf("test-*%s", extension))
	require.NoError(t, err, "Failed to create temp file")

	_, err = file.Write(content)
	require.NoError(t, err, "Failed to write to temp file")

	file.Close()

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}
