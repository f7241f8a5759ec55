package catalog

// Protein is the stored identity and annotation of a PDB entry.
type Protein struct {
	ProteinID         int64
	UUID              string
	Name              string
	Accession         string
	UniProtID         string
	Organism          string
	OrganismCanonical string
	Function          string
	AALength          int
	MolecularWeight   float64
}

// Structure is the stored experimental data of a Protein.
type Structure struct {
	StructureID   int64
	ProteinID     int64
	Method        *string
	Resolution    *float64
	LigandPresent bool
}

// Entry joins a Protein with its Structure.
type Entry struct {
	ProteinID         int64    `json:"proteinId" yaml:"protein_id"`
	UUID              string   `json:"uuid" yaml:"uuid"`
	Accession         string   `json:"pdbId" yaml:"pdb_id"`
	Name              string   `json:"proteinName" yaml:"protein_name"`
	UniProtID         string   `json:"uniprotId" yaml:"uniprot_id"`
	Organism          string   `json:"organism" yaml:"organism"`
	OrganismCanonical string   `json:"organismCanonical,omitempty" yaml:"organism_canonical,omitempty"`
	Function          string   `json:"function" yaml:"function"`
	AALength          int      `json:"aaLength" yaml:"aa_length"`
	MolecularWeight   float64  `json:"molecularWeight" yaml:"molecular_weight"`
	StructureID       int64    `json:"structureId" yaml:"structure_id"`
	Method            *string  `json:"method" yaml:"method"`
	Resolution        *float64 `json:"resolution" yaml:"resolution"`
	LigandPresent     bool     `json:"ligandPresent" yaml:"ligand_present"`
}

// Update carries the editable fields of a catalogued protein and of its
// structure. Rows are addressed by ProteinID and StructureID, Accession
// is only used in messages. Nil Method or Resolution clear the stored
// value.
type Update struct {
	ProteinID       int64
	Accession       string
	Name            string
	Organism        string
	Function        string
	AALength        int
	MolecularWeight float64
	StructureID     int64
	Method          *string
	Resolution      *float64
	LigandPresent   bool
}

// UpdateFromEntry creates an Update that keeps all values of e.
func UpdateFromEntry(e Entry) Update {
	return Update{
		ProteinID:       e.ProteinID,
		Accession:       e.Accession,
		Name:            e.Name,
		Organism:        e.Organism,
		Function:        e.Function,
		AALength:        e.AALength,
		MolecularWeight: e.MolecularWeight,
		StructureID:     e.StructureID,
		Method:          e.Method,
		Resolution:      e.Resolution,
		LigandPresent:   e.LigandPresent,
	}
}

// Stats are catalog totals.
type Stats struct {
	Total         int `json:"total" yaml:"total"`
	WithLigand    int `json:"withLigand" yaml:"with_ligand"`
	WithoutLigand int `json:"withoutLigand" yaml:"without_ligand"`
}
