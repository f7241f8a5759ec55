package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/protdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProteinTableDDL tests DDL generation for Protein model
func TestProteinTableDDL(t *testing.T) {
	p := schema.Protein{}
	ddl := p.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE protein (")
	assert.Contains(t, ddl, "protein_id INTEGER PRIMARY KEY AUTOINCREMENT")

	// accession is the natural key of ingestion
	assert.Contains(t, ddl, "pdb_id TEXT NOT NULL UNIQUE")

	assert.Contains(t, ddl, "uniprot_id TEXT")
	assert.Contains(t, ddl, "organism_canonical TEXT")
	assert.Contains(t, ddl, "molecular_weight REAL NOT NULL DEFAULT 0")
}

// TestStructureTableDDL tests DDL generation for Structure model
func TestStructureTableDDL(t *testing.T) {
	s := schema.Structure{}
	ddl := s.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE protein_structure (")
	assert.Contains(t, ddl,
		"protein_id INTEGER NOT NULL REFERENCES protein(protein_id)")
	assert.Contains(t, ddl, "resolution REAL")
	assert.Contains(t, ddl, "ligand_present INTEGER NOT NULL DEFAULT 0")

	// association field has no column
	assert.NotContains(t, ddl, "Protein")
}

// TestTableNames tests TableName methods
func TestTableNames(t *testing.T) {
	assert.Equal(t, "protein", schema.Protein{}.TableName())
	assert.Equal(t, "protein_structure", schema.Structure{}.TableName())
}

// TestIndexDDL tests secondary indexes
func TestIndexDDL(t *testing.T) {
	for _, m := range schema.DDLModels() {
		idx := m.IndexDDL()
		require.NotEmpty(t, idx, m.TableName())
		assert.Contains(t, strings.Join(idx, "\n"), m.TableName())
	}
}

// TestModelsOrder verifies owners are created before dependents.
func TestModelsOrder(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 2)
	_, ok := models[0].(*schema.Protein)
	assert.True(t, ok)
	_, ok = models[1].(*schema.Structure)
	assert.True(t, ok)

	ddl := schema.DDLModels()
	require.Len(t, ddl, 2)
	assert.Equal(t, "protein", ddl[0].TableName())
	assert.Equal(t, "protein_structure", ddl[1].TableName())
}
