package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
)

// ConnectionError creates an error for a failed connection. Target is
// a SQLite file or a host:port/database string.
func ConnectionError(dialect, target string, err error) error {
	msg := `Cannot connect to %s database <em>%s</em>

<em>How to fix:</em>
  1. Check database settings in ~/.config/protdb/config.yaml
  2. For PostgreSQL verify the server is running:
     <em>pg_isready -h HOST -p PORT</em>
  3. For SQLite verify the directory of the file is writable`
	vars := []any{dialect, target}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s %s: %w",
			dialect, target, err),
	}
}

// UnsupportedTypeError is returned for a database type that has no driver.
func UnsupportedTypeError(dialect string) error {
	msg := "Database type <em>%s</em> is not supported, use sqlite or postgres"
	vars := []any{dialect}
	return &gn.Error{
		Code: errcode.DBUnsupportedTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported database type %q", dialect),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

func TableCheckError(err error) error {
	msg := "Cannot verify database state"
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

func QueryTablesError(err error) error {
	msg := "Cannot list database tables"
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

func ScanTableError(err error) error {
	msg := "Cannot read database table names"
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
