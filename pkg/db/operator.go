// Package db defines contracts for database connection management and
// schema lifecycle. Implementations live in internal/iodb and
// internal/ioschema.
package db

import (
	"context"
	"database/sql"

	"github.com/gnames/protdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It owns the connection of one of the supported backends (SQLite or
// PostgreSQL) and exposes it as *sql.DB to the catalog store and the schema
// manager.
type Operator interface {
	// Connect opens the database described by the config. For SQLite
	// cfg.Path must point to the database file.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes all database connections.
	Close() error

	// Dialect returns config.SQLite or config.Postgres. It is empty before
	// Connect.
	Dialect() string

	// DB returns the database/sql handle of the connection, nil before
	// Connect.
	DB() *sql.DB

	// Pool returns the pgxpool.Pool of a PostgreSQL connection. It is nil
	// for SQLite.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any user tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all user tables.
	DropAllTables(ctx context.Context) error
}

// SchemaManager creates and migrates the catalog schema.
type SchemaManager interface {
	// Create drops all existing tables and creates an empty catalog.
	Create(ctx context.Context) error

	// Migrate brings the schema to the latest version. It is idempotent
	// and never removes data.
	Migrate(ctx context.Context) error
}
