// Package iocatalog implements catalog.Catalog: ingestion of PDB entries
// from remote sources, edits and queries of the catalog store.
package iocatalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gnames/gnuuid"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/remote"
	"github.com/gnames/protdb/pkg/weight"
)

// Unknown is stored for a name or organism the sources do not provide.
const Unknown = "Unknown"

const (
	reasonEntry    = "structural data not found"
	reasonCrossRef = "cross-reference not found"
	reasonSequence = "sequence data not found"
)

func unavailableReason(reason string) string {
	switch reason {
	case reasonEntry:
		return "structural data service unavailable"
	case reasonCrossRef:
		return "cross-reference service unavailable"
	case reasonSequence:
		return "sequence data service unavailable"
	default:
		return reason
	}
}

type manager struct {
	store catalog.Store
	src   remote.Sources
	names catalog.NameNormalizer

	// mu serializes writes, remote fetches and reads run without it.
	mu sync.Mutex
}

// New creates a Catalog. Names may be nil, then canonical organism names
// are not computed.
func New(
	store catalog.Store,
	src remote.Sources,
	names catalog.NameNormalizer,
) catalog.Catalog {
	return &manager{store: store, src: src, names: names}
}

func (m *manager) Ingest(
	ctx context.Context,
	accession string,
) (catalog.Result, error) {
	var res catalog.Result
	acc := remote.NormalizeAccession(accession)
	if acc == "" {
		return res, InvalidAccessionError(accession)
	}
	res.Accession = acc

	entry, err := m.src.Entries.Fetch(ctx, acc)
	if err != nil {
		return res, SourceError(acc, reasonEntry, err)
	}

	xref, err := m.src.CrossRefs.Fetch(ctx, acc)
	if err != nil {
		return res, SourceError(acc, reasonCrossRef, err)
	}
	if xref.UniProtID == "" {
		return res, CrossRefNotFoundError(acc)
	}

	seq, err := m.src.Sequences.Fetch(ctx, xref.UniProtID)
	if err != nil {
		return res, SourceError(acc, reasonSequence, err)
	}

	p := catalog.Protein{
		UUID:            gnuuid.New(acc).String(),
		Name:            orUnknown(entry.Title),
		Accession:       acc,
		UniProtID:       xref.UniProtID,
		Organism:        orUnknown(xref.Organism),
		Function:        seq.Function,
		AALength:        weight.Residues(seq.Sequence),
		MolecularWeight: weight.MolecularWeight(seq.Sequence),
	}
	p.OrganismCanonical = m.canonical(p.Organism)

	s := catalog.Structure{
		Method:        entry.Method,
		Resolution:    entry.Resolution,
		LigandPresent: entry.LigandPresent,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var exists bool
	err = m.store.Tx(ctx, func(tx catalog.Tx) error {
		if _, err := tx.InsertProtein(ctx, p); err != nil {
			return err
		}
		id, err := tx.ProteinID(ctx, acc)
		if err != nil {
			return err
		}
		if id == 0 {
			return InsertProteinError(acc)
		}
		p.ProteinID = id

		sid, err := tx.StructureID(ctx, id)
		if err != nil {
			return err
		}
		if sid != 0 {
			exists = true
			return nil
		}
		s.ProteinID = id
		return tx.InsertStructure(ctx, s)
	})
	if err != nil {
		return res, err
	}

	if exists {
		res.Outcome = catalog.AlreadyExists
		res.Message = "Protein already exists"
		slog.Info("Protein already exists", "accession", acc,
			"protein_id", p.ProteinID)
		return res, nil
	}

	res.Outcome = catalog.Added
	res.Message = "Protein added successfully"
	slog.Info("Protein added",
		"accession", acc,
		"protein_id", p.ProteinID,
		"uniprot_id", p.UniProtID,
		"aa_length", p.AALength,
		"molecular_weight", p.MolecularWeight,
	)
	return res, nil
}

func (m *manager) Delete(
	ctx context.Context,
	accession string,
) (catalog.Result, error) {
	var res catalog.Result
	acc := remote.NormalizeAccession(accession)
	if acc == "" {
		return res, InvalidAccessionError(accession)
	}
	res.Accession = acc

	m.mu.Lock()
	defer m.mu.Unlock()

	var id int64
	err := m.store.Tx(ctx, func(tx catalog.Tx) error {
		var err error
		id, err = tx.ProteinID(ctx, acc)
		if err != nil {
			return err
		}
		if id == 0 {
			return ProteinNotFoundError(acc)
		}
		if _, err = tx.DeleteStructures(ctx, id); err != nil {
			return err
		}
		_, err = tx.DeleteProtein(ctx, id)
		return err
	})
	if err != nil {
		return res, err
	}

	res.Outcome = catalog.Deleted
	res.Message = fmt.Sprintf("Successfully deleted protein %s", acc)
	slog.Info("Protein deleted", "accession", acc, "protein_id", id)
	return res, nil
}

func (m *manager) Update(
	ctx context.Context,
	upd catalog.Update,
) (catalog.Result, error) {
	res := catalog.Result{Accession: upd.Accession}
	if upd.AALength < 0 {
		return res, InvalidUpdateError("aa_length", upd.AALength)
	}
	if upd.MolecularWeight < 0 {
		return res, InvalidUpdateError("molecular_weight", upd.MolecularWeight)
	}
	if upd.Resolution != nil && *upd.Resolution < 0 {
		return res, InvalidUpdateError("resolution", *upd.Resolution)
	}

	p := catalog.Protein{
		ProteinID:       upd.ProteinID,
		Name:            strings.TrimSpace(upd.Name),
		Organism:        strings.TrimSpace(upd.Organism),
		Function:        strings.TrimSpace(upd.Function),
		AALength:        upd.AALength,
		MolecularWeight: upd.MolecularWeight,
	}
	p.OrganismCanonical = m.canonical(p.Organism)

	s := catalog.Structure{
		StructureID:   upd.StructureID,
		ProteinID:     upd.ProteinID,
		Method:        upd.Method,
		Resolution:    upd.Resolution,
		LigandPresent: upd.LigandPresent,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.store.Tx(ctx, func(tx catalog.Tx) error {
		n, err := tx.UpdateProtein(ctx, p)
		if err != nil {
			return err
		}
		if n == 0 {
			return ProteinIDNotFoundError(upd.Accession, upd.ProteinID)
		}
		n, err = tx.UpdateStructure(ctx, s)
		if err != nil {
			return err
		}
		if n == 0 {
			return StructureNotFoundError(upd.Accession,
				upd.ProteinID, upd.StructureID)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Outcome = catalog.Updated
	res.Message = "Protein updated successfully"
	slog.Info("Protein updated",
		"accession", upd.Accession,
		"protein_id", upd.ProteinID,
		"structure_id", upd.StructureID,
	)
	return res, nil
}

// Lookup returns nil for an empty term.
func (m *manager) Lookup(
	ctx context.Context,
	term string,
) (*catalog.Entry, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	return m.store.Lookup(ctx, term)
}

func (m *manager) Get(
	ctx context.Context,
	accession string,
) (*catalog.Entry, error) {
	acc := remote.NormalizeAccession(accession)
	if acc == "" {
		return nil, InvalidAccessionError(accession)
	}
	return m.store.Get(ctx, acc)
}

func (m *manager) List(ctx context.Context) ([]catalog.Entry, error) {
	return m.store.List(ctx)
}

func (m *manager) Stats(ctx context.Context) (catalog.Stats, error) {
	return m.store.Stats(ctx)
}

func (m *manager) canonical(organism string) string {
	if m.names == nil || organism == Unknown {
		return ""
	}
	return m.names.Canonical(organism)
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
