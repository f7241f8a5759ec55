package iodb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/iodb"
	"github.com/gnames/protdb/internal/iotesting"
	"github.com/gnames/protdb/pkg/config"
	"github.com/gnames/protdb/pkg/db"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	op := iodb.NewOperator()
	err := op.Connect(context.Background(), &cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { op.Close() })
	return op
}

func TestNotConnected(t *testing.T) {
	op := iodb.NewOperator()
	ctx := context.Background()

	assert.Empty(t, op.Dialect())
	assert.Nil(t, op.DB())

	_, err := op.HasTables(ctx)
	require.Error(t, err)
	assert.Equal(t, errcode.DBNotConnectedError, err.(*gn.Error).Code)

	err = op.DropAllTables(ctx)
	require.Error(t, err)
	assert.NoError(t, op.Close())
}

func TestConnectUnsupported(t *testing.T) {
	op := iodb.NewOperator()
	err := op.Connect(context.Background(),
		&config.DatabaseConfig{Type: "mysql"})
	require.Error(t, err)
	assert.Equal(t, errcode.DBUnsupportedTypeError, err.(*gn.Error).Code)
}

func TestConnectSQLiteBadPath(t *testing.T) {
	op := iodb.NewOperator()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.sqlite")
	err := op.Connect(context.Background(),
		&config.DatabaseConfig{Type: config.SQLite, Path: path})
	require.Error(t, err)
	assert.Equal(t, errcode.DBConnectionError, err.(*gn.Error).Code)
}

func TestSQLiteTables(t *testing.T) {
	ctx := context.Background()
	op := connect(t, iotesting.SQLiteConfig(t))
	assert.Equal(t, config.SQLite, op.Dialect())
	assert.Nil(t, op.Pool())

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = op.DB().ExecContext(ctx,
		"CREATE TABLE parent (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx,
		`CREATE TABLE child (id INTEGER PRIMARY KEY,
		parent_id INTEGER NOT NULL REFERENCES parent(id))`)
	require.NoError(t, err)

	// foreign keys are enforced
	_, err = op.DB().ExecContext(ctx,
		"INSERT INTO child (parent_id) VALUES (42)")
	require.Error(t, err)

	_, err = op.DB().ExecContext(ctx, "INSERT INTO parent (id) VALUES (1)")
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx,
		"INSERT INTO child (parent_id) VALUES (1)")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "child")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, op.DropAllTables(ctx))
	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	// foreign keys are back on after the drop
	var fk int
	err = op.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk)
}

func TestPostgresTables(t *testing.T) {
	ctx := context.Background()
	op := connect(t, iotesting.PostgresConfig(t))
	assert.Equal(t, config.Postgres, op.Dialect())
	require.NotNil(t, op.Pool())

	require.NoError(t, op.DropAllTables(ctx))

	_, err := op.DB().ExecContext(ctx,
		"CREATE TABLE parent (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx,
		"CREATE TABLE child (id SERIAL PRIMARY KEY, parent_id INT REFERENCES parent(id))")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "parent")
	require.NoError(t, err)
	assert.True(t, exists)

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, op.DropAllTables(ctx))
	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}
