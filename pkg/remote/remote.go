// Package remote defines contracts of read-only external data services
// that feed the catalog: structural entries, accession cross-references
// and sequence annotations. Implementations live in internal/iorcsb and
// internal/iouniprot.
package remote

import (
	"context"
	"strings"
)

// NoFunction is the function text of records without a FUNCTION comment.
const NoFunction = "No description available"

// Fetcher retrieves a record of type T by its key. When the remote service
// has no data for the key, Fetch returns an error with
// errcode.RemoteNotFoundError code. Transport or protocol failures return
// errcode.RemoteUnavailableError. Implementations never retry.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, key string) (T, error)
}

// StructureEntry is the structural metadata of a PDB entry.
type StructureEntry struct {
	// Title is the entry title used as a display name.
	// Empty when the entry has no title.
	Title string

	// Method is the first experimental method, nil if none recorded.
	Method *string

	// Resolution is the first combined resolution in angstroms, nil for
	// entries without one (NMR, for example).
	Resolution *float64

	// LigandPresent is true when the entry has at least one non-polymer
	// entity.
	LigandPresent bool
}

// CrossReference links a PDB entry to a UniProt record.
type CrossReference struct {
	// UniProtID is the first UniProt accession of the first polymer
	// entity. Empty when the entity has no UniProt mapping.
	UniProtID string

	// Organism is the scientific name of the first source organism.
	// Empty when it is not known.
	Organism string
}

// SequenceRecord is the sequence and annotated function of a UniProt record.
type SequenceRecord struct {
	// Sequence of single-letter residue codes.
	Sequence string

	// Function is the text of the first FUNCTION comment or NoFunction.
	Function string
}

// Sources bundles the three fetchers the catalog ingestion depends on.
type Sources struct {
	// Entries are keyed by PDB accession.
	Entries Fetcher[StructureEntry]
	// CrossRefs are keyed by PDB accession.
	CrossRefs Fetcher[CrossReference]
	// Sequences are keyed by UniProt accession.
	Sequences Fetcher[SequenceRecord]
}

// NormalizeAccession trims and upper-cases a PDB accession code.
func NormalizeAccession(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
