// Package iodb implements database operations for SQLite (modernc) and
// PostgreSQL (pgxpool). This is an impure I/O package that implements
// contracts defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gnames/protdb/pkg/config"
	"github.com/gnames/protdb/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// operator implements db.Operator. For PostgreSQL it keeps both the
// pgxpool.Pool and a database/sql handle on top of it.
type operator struct {
	dialect string
	db      *sql.DB
	pool    *pgxpool.Pool
}

// NewOperator creates a new database operator (without connecting).
func NewOperator() db.Operator {
	return &operator{}
}

// Connect opens the database of the configured type.
func (o *operator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	switch cfg.Type {
	case config.SQLite:
		return o.connectSQLite(ctx, cfg.Path)
	case config.Postgres:
		return o.connectPostgres(ctx, cfg)
	default:
		return UnsupportedTypeError(cfg.Type)
	}
}

// connectSQLite opens a single-connection SQLite handle with foreign
// keys enforced. One connection makes SQLite a single writer and keeps
// per-connection pragmas in effect.
func (o *operator) connectSQLite(ctx context.Context, path string) error {
	if path == "" {
		return ConnectionError(config.SQLite, path,
			fmt.Errorf("empty database path"))
	}
	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return ConnectionError(config.SQLite, path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return ConnectionError(config.SQLite, path, err)
	}

	o.dialect = config.SQLite
	o.db = sqlDB
	return nil
}

// connectPostgres establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// a catalog of this size.
func (o *operator) connectPostgres(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	target := fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Database)
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return ConnectionError(config.Postgres, target, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(config.Postgres, target, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(config.Postgres, target, err)
	}

	o.dialect = config.Postgres
	o.pool = pool
	o.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// Close releases all database connections.
func (o *operator) Close() error {
	var err error
	if o.db != nil {
		err = o.db.Close()
		o.db = nil
	}
	if o.pool != nil {
		o.pool.Close()
		o.pool = nil
	}
	return err
}

func (o *operator) Dialect() string {
	return o.dialect
}

func (o *operator) DB() *sql.DB {
	return o.db
}

func (o *operator) Pool() *pgxpool.Pool {
	return o.pool
}

// TableExists checks if a table exists in the current database.
func (o *operator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT count(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?`
	if o.dialect == config.Postgres {
		query = `
		SELECT count(*) FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1`
	}

	var count int
	err := o.db.QueryRowContext(ctx, query, tableName).Scan(&count)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return count > 0, nil
}

// HasTables checks if the database has any user tables.
func (o *operator) HasTables(ctx context.Context) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	tables, err := o.tables(ctx)
	if err != nil {
		return false, TableCheckError(err)
	}
	return len(tables) > 0, nil
}

// DropAllTables drops all user tables.
func (o *operator) DropAllTables(ctx context.Context) error {
	if o.db == nil {
		return NotConnectedError()
	}

	tables, err := o.tables(ctx)
	if err != nil {
		return err
	}

	if o.dialect == config.Postgres {
		for _, table := range tables {
			dropSQL := fmt.Sprintf(
				"DROP TABLE IF EXISTS %s CASCADE", table)
			if _, err := o.db.ExecContext(ctx, dropSQL); err != nil {
				return DropTableError(table, err)
			}
		}
		return nil
	}

	// SQLite has no CASCADE, referencing tables can only be dropped in
	// any order with foreign keys switched off on the same connection.
	conn, err := o.db.Conn(ctx)
	if err != nil {
		return DropTableError("*", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return DropTableError("*", err)
	}
	defer conn.ExecContext(ctx, "PRAGMA foreign_keys = ON")

	for _, table := range tables {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := conn.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

func (o *operator) tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	if o.dialect == config.Postgres {
		query = `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'`
	}

	rows, err := o.db.QueryContext(ctx, query)
	if err != nil {
		return nil, QueryTablesError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, ScanTableError(err)
		}
		res = append(res, name)
	}
	if err := rows.Err(); err != nil {
		return nil, ScanTableError(err)
	}
	return res, nil
}
