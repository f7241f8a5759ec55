package catalog_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	mk := func(code gn.ErrorCode) error {
		return &gn.Error{Code: code, Err: errors.New("x")}
	}

	tests := []struct {
		msg  string
		err  error
		kind catalog.Kind
	}{
		{"not found", mk(errcode.RemoteNotFoundError), catalog.RemoteNotFound},
		{"unavailable", mk(errcode.RemoteUnavailableError),
			catalog.RemoteUnavailable},
		{"bad accession", mk(errcode.InvalidAccessionError),
			catalog.InvalidInput},
		{"bad update", mk(errcode.InvalidUpdateError), catalog.InvalidInput},
		{"ref", mk(errcode.ReferentialViolationError),
			catalog.ReferentialViolation},
		{"storage", mk(errcode.StorageError), catalog.StorageFailure},
		{"wrapped", fmt.Errorf("batch: %w", mk(errcode.StorageError)),
			catalog.StorageFailure},
		{"other code", mk(errcode.ReadFileError), catalog.UnknownKind},
		{"plain", errors.New("plain"), catalog.UnknownKind},
		{"nil", nil, catalog.UnknownKind},
	}

	for _, v := range tests {
		assert.Equal(t, v.kind, catalog.KindOf(v.err), v.msg)
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "added", catalog.Added.String())
	assert.Equal(t, "already exists", catalog.AlreadyExists.String())
	assert.Equal(t, "deleted", catalog.Deleted.String())
	assert.Equal(t, "updated", catalog.Updated.String())
	assert.Equal(t, "unknown", catalog.Outcome(0).String())
	assert.Equal(t, "remote unavailable", catalog.RemoteUnavailable.String())
}

func TestUpdateFromEntry(t *testing.T) {
	method := "X-RAY DIFFRACTION"
	res := 1.8
	e := catalog.Entry{
		ProteinID: 7, Accession: "1A3N", Name: "Hemoglobin", Organism: "Homo sapiens",
		Function: "Oxygen transport", AALength: 141, MolecularWeight: 15.1,
		StructureID: 3, Method: &method, Resolution: &res,
		LigandPresent: true,
	}
	upd := catalog.UpdateFromEntry(e)
	assert.Equal(t, "1A3N", upd.Accession)
	assert.Equal(t, int64(7), upd.ProteinID)
	assert.Equal(t, int64(3), upd.StructureID)
	assert.Equal(t, &method, upd.Method)
	assert.Equal(t, &res, upd.Resolution)
	assert.True(t, upd.LigandPresent)
	assert.Equal(t, 141, upd.AALength)
}
