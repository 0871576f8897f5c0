// Package testutil starts a throwaway Postgres for integration tests.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresDB is a migrated database running in a container.
type PostgresDB struct {
	Pool      *pgxpool.Pool
	ConnStr   string
	container *postgres.PostgresContainer
}

// StartPostgres runs postgres:16-alpine, applies db/migration and opens a pool.
func StartPostgres(ctx context.Context) (*PostgresDB, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	db := &PostgresDB{container: pgContainer}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		db.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	db.ConnStr = connStr

	migrator, err := migrate.New("file://"+migrationsDir(), connStr)
	if err != nil {
		db.Terminate(ctx)
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		db.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	migrator.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		db.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}
	db.Pool = pool

	return db, nil
}

// Truncate empties the posts table between tests.
func (db *PostgresDB) Truncate(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE posts")
	return err
}

func (db *PostgresDB) Terminate(ctx context.Context) error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return db.container.Terminate(ctx)
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "db", "migration")
}
