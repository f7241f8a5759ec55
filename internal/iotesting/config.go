// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"path/filepath"
	"testing"

	"github.com/gnames/protdb/pkg/config"
)

// TestDatabaseName is the PostgreSQL database used by integration tests.
const TestDatabaseName = "protdb_test"

// SQLiteConfig returns a configuration with a SQLite catalog in a
// temporary directory removed after the test.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.SQLiteConfig(t)
//	    op := iodb.NewOperator()
//	    err := op.Connect(ctx, &cfg.Database)
//	}
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(dir),
		config.OptDatabaseType(config.SQLite),
		config.OptDatabasePath(filepath.Join(dir, "protdb_test.sqlite")),
	})
	return cfg
}
