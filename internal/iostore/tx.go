package iostore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnames/protdb/pkg/catalog"
)

// tx implements catalog.Tx over *sql.Tx.
type tx struct {
	tx *sql.Tx
	st *store
}

func (t *tx) exec(
	ctx context.Context,
	op, q string,
	args ...any,
) (int64, error) {
	res, err := t.tx.ExecContext(ctx, t.st.rebind(q), args...)
	if err != nil {
		return 0, StorageError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, StorageError(op, err)
	}
	return n, nil
}

func (t *tx) id(
	ctx context.Context,
	op, q string,
	arg any,
) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, t.st.rebind(q), arg).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, StorageError(op, err)
	}
	return id, nil
}

// InsertProtein relies on the unique accession so that concurrent
// catalogs sharing a database cannot create duplicates.
func (t *tx) InsertProtein(
	ctx context.Context,
	p catalog.Protein,
) (bool, error) {
	q := `INSERT INTO protein
	(uuid, protein_name, pdb_id, uniprot_id, organism,
	 organism_canonical, function, aa_length, molecular_weight)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (pdb_id) DO NOTHING`
	n, err := t.exec(ctx, "insert protein", q,
		p.UUID, p.Name, p.Accession, p.UniProtID, p.Organism,
		p.OrganismCanonical, p.Function, p.AALength, p.MolecularWeight,
	)
	return n > 0, err
}

func (t *tx) ProteinID(ctx context.Context, accession string) (int64, error) {
	q := `SELECT protein_id FROM protein WHERE pdb_id = ?`
	return t.id(ctx, "find protein", q, accession)
}

func (t *tx) StructureID(ctx context.Context, proteinID int64) (int64, error) {
	q := `SELECT structure_id FROM protein_structure
	WHERE protein_id = ? ORDER BY structure_id LIMIT 1`
	return t.id(ctx, "find structure", q, proteinID)
}

func (t *tx) InsertStructure(
	ctx context.Context,
	s catalog.Structure,
) error {
	q := `INSERT INTO protein_structure
	(protein_id, method, resolution, ligand_present)
	VALUES (?, ?, ?, ?)`
	_, err := t.exec(ctx, "insert structure", q,
		s.ProteinID, s.Method, s.Resolution, s.LigandPresent,
	)
	return err
}

func (t *tx) DeleteStructures(
	ctx context.Context,
	proteinID int64,
) (int64, error) {
	q := `DELETE FROM protein_structure WHERE protein_id = ?`
	return t.exec(ctx, "delete structure", q, proteinID)
}

func (t *tx) DeleteProtein(
	ctx context.Context,
	proteinID int64,
) (int64, error) {
	q := `DELETE FROM protein WHERE protein_id = ?`
	return t.exec(ctx, "delete protein", q, proteinID)
}

func (t *tx) UpdateProtein(
	ctx context.Context,
	p catalog.Protein,
) (int64, error) {
	q := `UPDATE protein SET
	protein_name = ?, organism = ?, organism_canonical = ?, function = ?,
	aa_length = ?, molecular_weight = ?
	WHERE protein_id = ?`
	return t.exec(ctx, "update protein", q,
		p.Name, p.Organism, p.OrganismCanonical, p.Function,
		p.AALength, p.MolecularWeight, p.ProteinID,
	)
}

func (t *tx) UpdateStructure(
	ctx context.Context,
	s catalog.Structure,
) (int64, error) {
	q := `UPDATE protein_structure SET
	method = ?, resolution = ?, ligand_present = ?
	WHERE structure_id = ? AND protein_id = ?`
	return t.exec(ctx, "update structure", q,
		s.Method, s.Resolution, s.LigandPresent,
		s.StructureID, s.ProteinID,
	)
}
