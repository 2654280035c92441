// Package storage is the persistence layer: a thin repository over
// database/sql backed by SQLite (the default, a single local file) or
// PostgreSQL. All queries use $n placeholders, which both drivers accept,
// and every row is scoped to the single local user.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// defaultUserID scopes every row. Single-user application; the column
// exists so a future multi-user schema needs no data migration.
const defaultUserID = 1

// DB wraps a sql.DB and provides repository methods.
type DB struct {
	conn *sql.DB
}

// Open connects to the database. Driver is "sqlite" or "pgx".
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if driver == "sqlite" {
		// Single writer; avoids SQLITE_BUSY between the session ticker
		// and API requests.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// RunMigrations applies all pending migrations from the given directory.
// The target database is inferred from the URL scheme (sqlite:// or
// postgres://).
func RunMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, databaseURL)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
