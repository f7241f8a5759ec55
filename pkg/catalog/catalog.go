// Package catalog defines the contracts of the protein structure catalog:
// the manager used by the CLI and the storage it delegates to.
package catalog

import (
	"context"
)

// Catalog ingests, edits and queries catalogued proteins. Implementations
// serialize writes so the same Catalog can be shared by concurrent
// callers.
type Catalog interface {
	// Ingest fetches remote data for a PDB accession and stores it as a
	// Protein with its Structure. Ingesting an accession that is already
	// catalogued succeeds with the AlreadyExists outcome.
	Ingest(ctx context.Context, accession string) (Result, error)

	// Delete removes the protein and its structure.
	Delete(ctx context.Context, accession string) (Result, error)

	// Update overwrites editable fields of a protein and its structure
	// in one transaction.
	Update(ctx context.Context, upd Update) (Result, error)

	// Lookup returns the first entry whose accession equals term (case
	// insensitive) or whose name contains it. Returns nil when nothing
	// matches.
	Lookup(ctx context.Context, term string) (*Entry, error)

	// Get returns the entry with the exact accession, nil if absent.
	Get(ctx context.Context, accession string) (*Entry, error)

	// List returns all entries in storage order.
	List(ctx context.Context) ([]Entry, error)

	// Stats returns catalog totals.
	Stats(ctx context.Context) (Stats, error)
}

// Store is the persistence layer of a Catalog.
type Store interface {
	// Tx runs fn in one transaction. The transaction commits if fn
	// returns nil and rolls back otherwise.
	Tx(ctx context.Context, fn func(Tx) error) error

	Lookup(ctx context.Context, term string) (*Entry, error)
	Get(ctx context.Context, accession string) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Stats(ctx context.Context) (Stats, error)
}

// Tx is the set of writes available inside Store.Tx.
type Tx interface {
	// InsertProtein inserts p unless its accession is already present.
	// Returns true if a row was inserted.
	InsertProtein(ctx context.Context, p Protein) (bool, error)

	// ProteinID returns the id of the protein with the accession,
	// 0 if absent.
	ProteinID(ctx context.Context, accession string) (int64, error)

	// StructureID returns the id of the structure of a protein, 0 if absent.
	StructureID(ctx context.Context, proteinID int64) (int64, error)

	InsertStructure(ctx context.Context, s Structure) error
	DeleteStructures(ctx context.Context, proteinID int64) (int64, error)
	DeleteProtein(ctx context.Context, proteinID int64) (int64, error)

	// UpdateProtein returns the number of affected rows.
	UpdateProtein(ctx context.Context, p Protein) (int64, error)

	// UpdateStructure changes a structure only if it belongs to
	// s.ProteinID. Returns the number of affected rows.
	UpdateStructure(ctx context.Context, s Structure) (int64, error)
}

// NameNormalizer converts a scientific name to its canonical form.
type NameNormalizer interface {
	// Canonical returns an empty string if the name cannot be parsed.
	Canonical(name string) string
}
