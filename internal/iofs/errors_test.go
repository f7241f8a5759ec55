package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	orig := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{"create dir", CreateDirError("/a/b", orig),
			errcode.CreateDirError, "/a/b", "cannot create"},
		{"copy file", CopyFileError("/a/config.yaml", orig),
			errcode.CopyFileError, "/a/config.yaml", "cannot copy"},
		{"read file", ReadFileError("/a/ids.txt", orig),
			errcode.ReadFileError, "/a/ids.txt", "cannot read"},
		{"create file", CreateFileError("/a/out.csv", orig),
			errcode.CreateFileError, "/a/out.csv", "cannot create file"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "<em>%s</em>", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		assert.Contains(t, gnErr.Err.Error(), "TestErrors", v.msg)
	}
}
