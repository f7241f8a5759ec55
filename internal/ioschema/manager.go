// Package ioschema implements db.SchemaManager. PostgreSQL catalogs are
// handled by GORM AutoMigrate, SQLite catalogs by DDL generated from the
// schema models.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/protdb/pkg/config"
	"github.com/gnames/protdb/pkg/db"
	"github.com/gnames/protdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the db.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Create drops all tables and creates an empty catalog.
func (m *manager) Create(ctx context.Context) error {
	if m.operator.DB() == nil {
		return NotConnectedError()
	}

	if err := m.operator.DropAllTables(ctx); err != nil {
		return err
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("Catalog schema created", "dialect", m.operator.Dialect())
	return nil
}

// Migrate creates missing tables and indexes. Existing data is kept.
func (m *manager) Migrate(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	if m.operator.Dialect() == config.Postgres {
		gormDB, err := gorm.Open(
			postgres.New(postgres.Config{Conn: sqlDB}),
			&gorm.Config{},
		)
		if err != nil {
			return GORMConnectionError(err)
		}

		if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
			return MigrateSchemaError(err)
		}
		return nil
	}

	return m.migrateSQLite(ctx)
}

func (m *manager) migrateSQLite(ctx context.Context) error {
	sqlDB := m.operator.DB()
	for _, model := range schema.DDLModels() {
		table := model.TableName()
		exists, err := m.operator.TableExists(ctx, table)
		if err != nil {
			return MigrateSchemaError(err)
		}
		if exists {
			continue
		}

		stmts := append([]string{model.TableDDL()}, model.IndexDDL()...)
		for _, q := range stmts {
			if _, err := sqlDB.ExecContext(ctx, q); err != nil {
				return CreateSchemaError(table, err)
			}
		}
		slog.Debug("Created table", "table", table)
	}
	return nil
}
