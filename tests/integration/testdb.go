//go:build integration

// Package integration runs the API against a real PostgreSQL started with testcontainers.
package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopledger/backend/internal/infrastructure/migration"
)

var (
	containerMu  sync.Mutex
	container    *tcpostgres.PostgresContainer
	containerDSN string
)

// appTables are truncated between tests, children first
var appTables = []string{"order_items", "orders", "purchases", "products", "suppliers", "categories"}

// startContainer starts PostgreSQL once per package run and applies the schema
func startContainer(ctx context.Context) (string, error) {
	containerMu.Lock()
	defer containerMu.Unlock()

	if container != nil {
		return containerDSN, nil
	}

	c, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shop_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("starting postgres: %w", err)
	}

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(ctx)
		return "", fmt.Errorf("connection string: %w", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		_ = c.Terminate(ctx)
		return "", err
	}
	sqlDB, err := db.DB()
	if err != nil {
		_ = c.Terminate(ctx)
		return "", err
	}
	defer sqlDB.Close()

	m, err := migration.New(sqlDB, nil)
	if err != nil {
		_ = c.Terminate(ctx)
		return "", err
	}
	if err := m.Up(); err != nil {
		_ = c.Terminate(ctx)
		return "", err
	}

	container = c
	containerDSN = dsn
	return dsn, nil
}

// stopContainer terminates the shared container
func stopContainer() {
	containerMu.Lock()
	defer containerMu.Unlock()

	if container == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = container.Terminate(ctx)
	container = nil
	containerDSN = ""
}

// NewTestDB connects to the shared container with empty tables
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn, err := startContainer(context.Background())
	require.NoError(t, err, "Failed to start PostgreSQL container")

	gormLogger := logger.Discard
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, table := range appTables {
		require.NoError(t, db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error)
	}
	return db
}
