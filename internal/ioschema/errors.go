package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot open PostgreSQL catalog with GORM

<em>How to fix:</em>
  1. Ensure the database is reachable
  2. Check database settings in ~/.config/protdb/config.yaml`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(table string, err error) error {
	msg := `Cannot create catalog table <em>%s</em>

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Run <em>protdb create --force</em> to start from an empty catalog`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to create table %s: %w", table, err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate catalog schema

<em>How to fix:</em>
  1. Check database user has ALTER permissions
  2. Back up the catalog with <em>protdb export</em> and recreate it`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}
