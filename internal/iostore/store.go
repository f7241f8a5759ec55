// Package iostore implements catalog.Store with database/sql for SQLite
// and PostgreSQL catalogs.
package iostore

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/config"
	"github.com/gnames/protdb/pkg/db"
)

// entryColumns are selected by every query that returns catalog.Entry.
const entryColumns = `
	p.protein_id, p.uuid, p.pdb_id, p.protein_name, p.uniprot_id,
	p.organism, p.organism_canonical, p.function, p.aa_length,
	p.molecular_weight,
	s.structure_id, s.method, s.resolution, s.ligand_present`

const entryFrom = `
	FROM protein p
	LEFT JOIN protein_structure s ON s.protein_id = p.protein_id`

type store struct {
	db      *sql.DB
	dialect string
}

// New creates a catalog.Store on a connected operator.
func New(op db.Operator) catalog.Store {
	return &store{db: op.DB(), dialect: op.Dialect()}
}

// Tx runs fn in a transaction and rolls it back if fn or the commit fails.
func (s *store) Tx(ctx context.Context, fn func(catalog.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StorageError("begin transaction", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&tx{tx: sqlTx, st: s}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return StorageError("commit transaction", err)
	}
	return nil
}

// Lookup prefers an exact accession match, then the earliest stored
// protein whose name contains term.
func (s *store) Lookup(
	ctx context.Context,
	term string,
) (*catalog.Entry, error) {
	q := `SELECT ` + entryColumns + entryFrom + `
	WHERE LOWER(p.pdb_id) = LOWER(?)
		OR LOWER(p.protein_name) LIKE LOWER(?) ESCAPE '\'
	ORDER BY CASE WHEN LOWER(p.pdb_id) = LOWER(?) THEN 0 ELSE 1 END,
		p.protein_id
	LIMIT 1`
	like := "%" + escapeLike(term) + "%"
	row := s.db.QueryRowContext(ctx, s.rebind(q), term, like, term)
	return s.scanOne(row, "look up protein")
}

// Get returns the entry with the accession or nil.
func (s *store) Get(
	ctx context.Context,
	accession string,
) (*catalog.Entry, error) {
	q := `SELECT ` + entryColumns + entryFrom + `
	WHERE p.pdb_id = ?`
	row := s.db.QueryRowContext(ctx, s.rebind(q), accession)
	return s.scanOne(row, "get protein")
}

// List returns all entries ordered by protein_id.
func (s *store) List(ctx context.Context) ([]catalog.Entry, error) {
	q := `SELECT ` + entryColumns + entryFrom + `
	ORDER BY p.protein_id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, StorageError("list proteins", err)
	}
	defer rows.Close()

	var res []catalog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, StorageError("list proteins", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, StorageError("list proteins", err)
	}
	return res, nil
}

// Stats counts proteins and structures with and without ligands.
func (s *store) Stats(ctx context.Context) (catalog.Stats, error) {
	var res catalog.Stats

	err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM protein").
		Scan(&res.Total)
	if err != nil {
		return res, StorageError("count proteins", err)
	}

	q := `SELECT count(*) FROM protein_structure WHERE ligand_present = ?`
	err = s.db.QueryRowContext(ctx, s.rebind(q), true).Scan(&res.WithLigand)
	if err != nil {
		return res, StorageError("count ligands", err)
	}

	res.WithoutLigand = res.Total - res.WithLigand
	return res, nil
}

func (s *store) scanOne(
	row *sql.Row,
	op string,
) (*catalog.Entry, error) {
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, StorageError(op, err)
	}
	return &e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (catalog.Entry, error) {
	var e catalog.Entry
	var name, uniprot, organism, canonical, function sql.NullString
	var method sql.NullString
	var resolution sql.NullFloat64
	var structureID sql.NullInt64
	var ligand sql.NullBool

	err := sc.Scan(
		&e.ProteinID, &e.UUID, &e.Accession, &name, &uniprot,
		&organism, &canonical, &function, &e.AALength,
		&e.MolecularWeight,
		&structureID, &method, &resolution, &ligand,
	)
	if err != nil {
		return e, err
	}

	e.Name = name.String
	e.UniProtID = uniprot.String
	e.Organism = organism.String
	e.OrganismCanonical = canonical.String
	e.Function = function.String
	e.StructureID = structureID.Int64
	e.LigandPresent = ligand.Bool
	if method.Valid {
		e.Method = &method.String
	}
	if resolution.Valid {
		e.Resolution = &resolution.Float64
	}
	return e, nil
}

// rebind converts '?' placeholders to '$n' for PostgreSQL. Queries must
// not contain '?' inside string literals.
func (s *store) rebind(q string) string {
	if s.dialect != config.Postgres {
		return q
	}
	var sb strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// escapeLike escapes LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
