package iocatalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/errcode"
)

func InvalidAccessionError(accession string) error {
	msg := "PDB ID cannot be empty"
	return &gn.Error{
		Code: errcode.InvalidAccessionError,
		Msg:  msg,
		Err:  fmt.Errorf("invalid accession %q", accession),
	}
}

// SourceError reports a failed remote fetch during ingestion. Reason
// is one of the stage reasons, for example "structural data not found".
// The error keeps the not-found or unavailable kind of the cause.
func SourceError(accession, reason string, err error) error {
	code := errcode.RemoteNotFoundError
	if catalog.KindOf(err) == catalog.RemoteUnavailable {
		code = errcode.RemoteUnavailableError
		reason = unavailableReason(reason)
	}
	msg := "Cannot add <em>%s</em>: %s"
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{accession, reason},
		Err:  fmt.Errorf("ingest %s: %s: %w", accession, reason, err),
	}
}

// CrossRefNotFoundError is returned when an entry has no UniProt mapping.
func CrossRefNotFoundError(accession string) error {
	msg := "Cannot add <em>%s</em>: %s"
	return &gn.Error{
		Code: errcode.RemoteNotFoundError,
		Msg:  msg,
		Vars: []any{accession, reasonCrossRef},
		Err: fmt.Errorf("ingest %s: %s: entry has no UniProt ids",
			accession, reasonCrossRef),
	}
}

// InsertProteinError is returned when a protein row cannot be found
// right after it was inserted.
func InsertProteinError(accession string) error {
	msg := "Protein insert failed for <em>%s</em>"
	return &gn.Error{
		Code: errcode.StorageError,
		Msg:  msg,
		Vars: []any{accession},
		Err:  fmt.Errorf("protein %s missing after insert", accession),
	}
}

func ProteinNotFoundError(accession string) error {
	msg := "Protein with PDB ID '<em>%s</em>' not found"
	return &gn.Error{
		Code: errcode.ReferentialViolationError,
		Msg:  msg,
		Vars: []any{accession},
		Err:  fmt.Errorf("protein %s not found", accession),
	}
}

func ProteinIDNotFoundError(accession string, proteinID int64) error {
	msg := "Protein <em>%s</em> (id %d) not found"
	return &gn.Error{
		Code: errcode.ReferentialViolationError,
		Msg:  msg,
		Vars: []any{accession, proteinID},
		Err:  fmt.Errorf("protein id %d not found", proteinID),
	}
}

func StructureNotFoundError(
	accession string,
	proteinID, structureID int64,
) error {
	msg := "Structure %d of protein <em>%s</em> not found"
	return &gn.Error{
		Code: errcode.ReferentialViolationError,
		Msg:  msg,
		Vars: []any{structureID, accession},
		Err: fmt.Errorf("structure %d does not belong to protein %d",
			structureID, proteinID),
	}
}

func InvalidUpdateError(field string, value any) error {
	msg := "<em>%s</em> cannot be negative, got %v"
	return &gn.Error{
		Code: errcode.InvalidUpdateError,
		Msg:  msg,
		Vars: []any{field, value},
		Err:  fmt.Errorf("invalid %s: %v", field, value),
	}
}

// BatchFailedError is returned when no accession of a batch could be
// ingested.
func BatchFailedError(failed int) error {
	msg := "All <em>%d</em> accessions failed, see the log for details"
	return &gn.Error{
		Code: errcode.BatchFailedError,
		Msg:  msg,
		Vars: []any{failed},
		Err:  fmt.Errorf("batch ingestion failed for %d accessions", failed),
	}
}
