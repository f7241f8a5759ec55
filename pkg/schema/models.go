// Package schema provides database schema models for protdb.
//
// The same structs drive two schema generators: GORM AutoMigrate for
// PostgreSQL (`gorm` tags) and generated DDL for SQLite (`db` and `ddl`
// tags).
package schema

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Protein is the identity and annotation of one catalogued PDB entry.
type Protein struct {
	// ProteinID is a surrogate key assigned on insert.
	ProteinID int64 `gorm:"column:protein_id;primaryKey;autoIncrement" db:"protein_id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// UUID is a UUIDv5 generated from the PDB accession. It is the same
	// for every catalog that ingests the accession.
	UUID string `gorm:"column:uuid;type:varchar(36);not null" db:"uuid" ddl:"TEXT NOT NULL"`

	// Name is the display name, the title of the structural entry.
	Name string `gorm:"column:protein_name;type:text" db:"protein_name" ddl:"TEXT"`

	// PDBAccession is the upper-cased PDB code, the natural key of
	// ingestion.
	PDBAccession string `gorm:"column:pdb_id;type:varchar(12);not null;uniqueIndex" db:"pdb_id" ddl:"TEXT NOT NULL UNIQUE"`

	// UniProtID is the cross-referenced UniProtKB accession.
	UniProtID string `gorm:"column:uniprot_id;type:varchar(16)" db:"uniprot_id" ddl:"TEXT"`

	// Organism is the scientific name of the source organism as reported
	// by the structural database.
	Organism string `gorm:"column:organism;type:text" db:"organism" ddl:"TEXT"`

	// OrganismCanonical is the canonical form of Organism (no authors,
	// strains or ranks). Empty if the name could not be parsed.
	OrganismCanonical string `gorm:"column:organism_canonical;type:text;index" db:"organism_canonical" ddl:"TEXT"`

	// Function is the functional annotation from UniProt.
	Function string `gorm:"column:function;type:text" db:"function" ddl:"TEXT"`

	// AALength is the number of residues in the sequence.
	AALength int `gorm:"column:aa_length;not null;default:0" db:"aa_length" ddl:"INTEGER NOT NULL DEFAULT 0"`

	// MolecularWeight in kilodaltons, rounded to 2 decimals.
	MolecularWeight float64 `gorm:"column:molecular_weight;type:double precision;not null;default:0" db:"molecular_weight" ddl:"REAL NOT NULL DEFAULT 0"`
}

// Structure holds experimental data of a Protein. Every Protein has
// exactly one Structure, the pairing is maintained by the catalog manager.
type Structure struct {
	// StructureID is a surrogate key assigned on insert.
	StructureID int64 `gorm:"column:structure_id;primaryKey;autoIncrement" db:"structure_id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// ProteinID references the owning Protein.
	ProteinID int64 `gorm:"column:protein_id;not null;index" db:"protein_id" ddl:"INTEGER NOT NULL REFERENCES protein(protein_id)"`

	// Method is the experimental determination method.
	Method *string `gorm:"column:method;type:text" db:"method" ddl:"TEXT"`

	// Resolution in angstroms, absent for non-diffraction methods.
	Resolution *float64 `gorm:"column:resolution;type:double precision" db:"resolution" ddl:"REAL"`

	// LigandPresent is true if the entry has non-polymer entities.
	LigandPresent bool `gorm:"column:ligand_present;not null;default:false" db:"ligand_present" ddl:"INTEGER NOT NULL DEFAULT 0"`

	// Protein is used by GORM to create the foreign key constraint only.
	Protein *Protein `gorm:"foreignKey:ProteinID;references:ProteinID"`
}
