// Package ioexport renders catalog entries as JSON, CSV, TSV or YAML.
package ioexport

import (
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/protdb/pkg/catalog"
	"gopkg.in/yaml.v3"
)

// Format of an export.
type Format int

const (
	JSON Format = iota + 1
	CSV
	TSV
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "tsv":
		return TSV, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, FormatError(s)
	}
}

var header = []string{
	"ProteinID", "UUID", "PDBID", "ProteinName", "UniProtID", "Organism",
	"OrganismCanonical", "Function", "AALength", "MolecularWeight",
	"StructureID", "Method", "Resolution", "LigandPresent",
}

// Write renders entries to w. An empty catalog produces an empty JSON
// array, an empty YAML list or just the header of CSV/TSV.
func Write(w io.Writer, entries []catalog.Entry, f Format) error {
	var data []byte
	var err error

	switch f {
	case JSON:
		if entries == nil {
			entries = []catalog.Entry{}
		}
		enc := gnfmt.GNjson{Pretty: true}
		data, err = enc.Encode(entries)
		data = append(data, '\n')
	case YAML:
		if entries == nil {
			entries = []catalog.Entry{}
		}
		data, err = yaml.Marshal(entries)
	case CSV:
		data = []byte(table(entries, ','))
	case TSV:
		data = []byte(table(entries, '\t'))
	default:
		return FormatError(f.String())
	}
	if err != nil {
		return WriteError(f.String(), err)
	}

	if _, err = w.Write(data); err != nil {
		return WriteError(f.String(), err)
	}
	return nil
}

// WriteEntry renders one entry as a JSON object or YAML mapping. CSV and
// TSV get a header and one row.
func WriteEntry(w io.Writer, e catalog.Entry, f Format) error {
	var data []byte
	var err error

	switch f {
	case JSON:
		enc := gnfmt.GNjson{Pretty: true}
		data, err = enc.Encode(e)
		data = append(data, '\n')
	case YAML:
		data, err = yaml.Marshal(e)
	default:
		return Write(w, []catalog.Entry{e}, f)
	}
	if err != nil {
		return WriteError(f.String(), err)
	}

	if _, err = w.Write(data); err != nil {
		return WriteError(f.String(), err)
	}
	return nil
}

func table(entries []catalog.Entry, sep rune) string {
	var sb strings.Builder
	sb.WriteString(gnfmt.ToCSV(header, sep))
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(gnfmt.ToCSV(row(e), sep))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func row(e catalog.Entry) []string {
	var method, resolution string
	if e.Method != nil {
		method = *e.Method
	}
	if e.Resolution != nil {
		resolution = strconv.FormatFloat(*e.Resolution, 'f', -1, 64)
	}
	return []string{
		strconv.FormatInt(e.ProteinID, 10),
		e.UUID,
		e.Accession,
		e.Name,
		e.UniProtID,
		e.Organism,
		e.OrganismCanonical,
		e.Function,
		strconv.Itoa(e.AALength),
		strconv.FormatFloat(e.MolecularWeight, 'f', 2, 64),
		strconv.FormatInt(e.StructureID, 10),
		method,
		resolution,
		strconv.FormatBool(e.LigandPresent),
	}
}
