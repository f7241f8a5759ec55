package ioexport_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/ioexport"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func entries() []catalog.Entry {
	method := "X-RAY DIFFRACTION"
	res := 1.74
	return []catalog.Entry{
		{
			ProteinID: 1, UUID: "9c4e4a3c-3c1d-5a3e-8f4e-1f0b8b3c7d21",
			Accession: "4HHB", Name: "Hemoglobin, deoxy",
			UniProtID: "P69905", Organism: "Homo sapiens",
			Function: "Oxygen transport", AALength: 47,
			MolecularWeight: 6, StructureID: 1, Method: &method,
			Resolution: &res, LigandPresent: true,
		},
		{
			ProteinID: 2, Accession: "2NMR", Name: "Unknown",
			Organism: "Unknown", Function: "No description available",
			AALength: 4, MolecularWeight: 0.3, StructureID: 2,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in  string
		out ioexport.Format
	}{
		{"json", ioexport.JSON},
		{" CSV ", ioexport.CSV},
		{"tsv", ioexport.TSV},
		{"yml", ioexport.YAML},
		{"yaml", ioexport.YAML},
	}
	for _, v := range tests {
		f, err := ioexport.ParseFormat(v.in)
		require.NoError(t, err, v.in)
		assert.Equal(t, v.out, f, v.in)
	}

	_, err := ioexport.ParseFormat("xml")
	require.Error(t, err)
	assert.Equal(t, errcode.ExportFormatError, err.(*gn.Error).Code)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioexport.Write(&buf, entries(), ioexport.JSON))

	var res []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "4HHB", res[0]["pdbId"])
	assert.Equal(t, 1.74, res[0]["resolution"])
	assert.Nil(t, res[1]["resolution"])

	buf.Reset()
	require.NoError(t, ioexport.Write(&buf, nil, ioexport.JSON))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioexport.Write(&buf, entries(), ioexport.YAML))

	var res []catalog.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "Hemoglobin, deoxy", res[0].Name)
	assert.True(t, res[0].LigandPresent)
}

func TestWriteTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioexport.Write(&buf, entries(), ioexport.CSV))
	lines := nonEmpty(buf.String())
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ProteinID,UUID,PDBID,ProteinName"))
	// names with separators are quoted
	assert.Contains(t, lines[1], `"Hemoglobin, deoxy"`)
	assert.Contains(t, lines[1], ",1.74,true")
	assert.Contains(t, lines[2], ",0.30,2,,,false")

	buf.Reset()
	require.NoError(t, ioexport.Write(&buf, entries(), ioexport.TSV))
	lines = nonEmpty(buf.String())
	require.Len(t, lines, 3)
	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 14)
	assert.Equal(t, "9c4e4a3c-3c1d-5a3e-8f4e-1f0b8b3c7d21", fields[1])
	assert.Equal(t, "Hemoglobin, deoxy", fields[3])
}

func TestWriteEntry(t *testing.T) {
	e := entries()[0]

	var buf bytes.Buffer
	require.NoError(t, ioexport.WriteEntry(&buf, e, ioexport.JSON))
	var obj map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &obj))
	assert.Equal(t, "P69905", obj["uniprotId"])

	buf.Reset()
	require.NoError(t, ioexport.WriteEntry(&buf, e, ioexport.YAML))
	var res catalog.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "4HHB", res.Accession)
	assert.Equal(t, 47, res.AALength)

	buf.Reset()
	require.NoError(t, ioexport.WriteEntry(&buf, e, ioexport.TSV))
	assert.Len(t, nonEmpty(buf.String()), 2)
}

func nonEmpty(s string) []string {
	var res []string
	for _, v := range strings.Split(s, "\n") {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrors(t *testing.T) {
	err := ioexport.Write(failWriter{}, entries(), ioexport.CSV)
	require.Error(t, err)
	assert.Equal(t, errcode.ExportWriteError, err.(*gn.Error).Code)

	err = ioexport.Write(&bytes.Buffer{}, entries(), ioexport.Format(42))
	require.Error(t, err)
	assert.Equal(t, errcode.ExportFormatError, err.(*gn.Error).Code)
}
