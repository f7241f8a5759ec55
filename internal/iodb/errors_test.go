package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"connection", ConnectionError("sqlite", "/tmp/a.db", cause),
			errcode.DBConnectionError, 2},
		{"unsupported", UnsupportedTypeError("mysql"),
			errcode.DBUnsupportedTypeError, 1},
		{"not connected", NotConnectedError(),
			errcode.DBNotConnectedError, 0},
		{"table exists", TableExistsCheckError("protein", cause),
			errcode.DBTableExistsCheckError, 1},
		{"table check", TableCheckError(cause),
			errcode.DBTableCheckError, 0},
		{"query tables", QueryTablesError(cause),
			errcode.DBQueryTablesError, 0},
		{"scan table", ScanTableError(cause),
			errcode.DBScanTableError, 0},
		{"drop table", DropTableError("protein", cause),
			errcode.DBDropTableError, 1},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
		assert.Len(t, gnErr.Vars, v.vars, v.msg)
		require.NotNil(t, gnErr.Err, v.msg)
	}

	gnErr := ConnectionError("postgres", "h:5432/protdb", cause).(*gn.Error)
	assert.ErrorIs(t, gnErr.Err, cause)
	assert.Contains(t, gnErr.Err.Error(), "h:5432/protdb")
}
