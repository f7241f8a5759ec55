// Package iorcsb implements remote fetchers backed by the RCSB PDB core
// REST API: structural entries and their UniProt cross-references.
package iorcsb

import (
	"context"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/gnames/protdb/internal/iorest"
	"github.com/gnames/protdb/pkg/remote"
)

type entryJSON struct {
	Struct struct {
		Title string `json:"title"`
	} `json:"struct"`
	Exptl []struct {
		Method string `json:"method"`
	} `json:"exptl"`
	EntryInfo struct {
		ResolutionCombined []float64 `json:"resolution_combined"`
	} `json:"rcsb_entry_info"`
	Identifiers struct {
		NonpolymerEntityIDs []string `json:"nonpolymer_entity_ids"`
	} `json:"rcsb_entry_container_identifiers"`
}

type polymerEntityJSON struct {
	Identifiers struct {
		UniProtIDs []string `json:"uniprot_ids"`
	} `json:"rcsb_polymer_entity_container_identifiers"`
	SourceOrganism []struct {
		ScientificName string `json:"scientific_name"`
	} `json:"rcsb_entity_source_organism"`
}

type entries struct {
	client  *iorest.Client
	baseURL string
}

// NewEntries creates a fetcher of structural entries keyed by PDB
// accession. baseURL is the core API root, for example
// https://data.rcsb.org/rest/v1/core.
func NewEntries(
	client *iorest.Client,
	baseURL string,
) remote.Fetcher[remote.StructureEntry] {
	return &entries{client: client, baseURL: baseURL}
}

// Fetch reads GET {base}/entry/{accession}.
func (e *entries) Fetch(
	ctx context.Context,
	accession string,
) (remote.StructureEntry, error) {
	var res remote.StructureEntry
	var data entryJSON

	url := iorest.JoinURL(e.baseURL, "entry", accession)
	if err := e.client.GetJSON(ctx, url, &data); err != nil {
		return res, err
	}

	res.Title = clean(data.Struct.Title)
	if len(data.Exptl) > 0 && data.Exptl[0].Method != "" {
		method := clean(data.Exptl[0].Method)
		res.Method = &method
	}
	if rs := data.EntryInfo.ResolutionCombined; len(rs) > 0 {
		resolution := rs[0]
		res.Resolution = &resolution
	}
	res.LigandPresent = len(data.Identifiers.NonpolymerEntityIDs) > 0
	return res, nil
}

type crossRefs struct {
	client  *iorest.Client
	baseURL string
}

// NewCrossRefs creates a fetcher of UniProt cross-references keyed by
// PDB accession. Only the first polymer entity of an entry is used.
func NewCrossRefs(
	client *iorest.Client,
	baseURL string,
) remote.Fetcher[remote.CrossReference] {
	return &crossRefs{client: client, baseURL: baseURL}
}

// Fetch reads GET {base}/polymer_entity/{accession}/1. A record without
// UniProt mapping results in an empty UniProtID, not in an error.
func (c *crossRefs) Fetch(
	ctx context.Context,
	accession string,
) (remote.CrossReference, error) {
	var res remote.CrossReference
	var data polymerEntityJSON

	url := iorest.JoinURL(c.baseURL, "polymer_entity", accession, "1")
	if err := c.client.GetJSON(ctx, url, &data); err != nil {
		return res, err
	}

	if ids := data.Identifiers.UniProtIDs; len(ids) > 0 {
		res.UniProtID = strings.TrimSpace(ids[0])
	}
	if src := data.SourceOrganism; len(src) > 0 {
		res.Organism = clean(src[0].ScientificName)
	}
	return res, nil
}

func clean(s string) string {
	return strings.TrimSpace(gnlib.FixUtf8(s))
}
