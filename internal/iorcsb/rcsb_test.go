package iorcsb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnames/protdb/internal/iorcsb"
	"github.com/gnames/protdb/internal/iorest"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = map[string]string{
	"/entry/1A3N": `{
		"struct": {"title": "DEOXY HUMAN HEMOGLOBIN"},
		"exptl": [{"method": "X-RAY DIFFRACTION"}, {"method": "OTHER"}],
		"rcsb_entry_info": {"resolution_combined": [1.8, 2.1]},
		"rcsb_entry_container_identifiers": {"nonpolymer_entity_ids": ["3"]}
	}`,
	"/entry/1NMR": `{
		"struct": {"title": "  NMR structure  "},
		"exptl": [{"method": "SOLUTION NMR"}],
		"rcsb_entry_info": {},
		"rcsb_entry_container_identifiers": {}
	}`,
	"/entry/0BAR":                   `{}`,
	"/polymer_entity/1A3N/1": `{
		"rcsb_polymer_entity_container_identifiers": {"uniprot_ids": ["P69905", "P68871"]},
		"rcsb_entity_source_organism": [{"scientific_name": "Homo sapiens"}]
	}`,
	"/polymer_entity/1SYN/1": `{
		"rcsb_polymer_entity_container_identifiers": {}
	}`,
}

func server(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/entry/5XXX" {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			body, ok := fixtures[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(body))
		}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEntries(t *testing.T) {
	srv := server(t)
	f := iorcsb.NewEntries(iorest.New(time.Second), srv.URL)
	ctx := context.Background()

	e, err := f.Fetch(ctx, "1A3N")
	require.NoError(t, err)
	assert.Equal(t, "DEOXY HUMAN HEMOGLOBIN", e.Title)
	require.NotNil(t, e.Method)
	assert.Equal(t, "X-RAY DIFFRACTION", *e.Method)
	require.NotNil(t, e.Resolution)
	assert.Equal(t, 1.8, *e.Resolution)
	assert.True(t, e.LigandPresent)

	e, err = f.Fetch(ctx, "1NMR")
	require.NoError(t, err)
	assert.Equal(t, "NMR structure", e.Title)
	assert.Nil(t, e.Resolution)
	assert.False(t, e.LigandPresent)

	e, err = f.Fetch(ctx, "0BAR")
	require.NoError(t, err)
	assert.Empty(t, e.Title)
	assert.Nil(t, e.Method)

	_, err = f.Fetch(ctx, "9ZZZ")
	require.Error(t, err)
	assert.Equal(t, catalog.RemoteNotFound, catalog.KindOf(err))

	_, err = f.Fetch(ctx, "5XXX")
	require.Error(t, err)
	assert.Equal(t, catalog.RemoteUnavailable, catalog.KindOf(err))
}

func TestCrossRefs(t *testing.T) {
	srv := server(t)
	f := iorcsb.NewCrossRefs(iorest.New(time.Second), srv.URL)
	ctx := context.Background()

	x, err := f.Fetch(ctx, "1A3N")
	require.NoError(t, err)
	assert.Equal(t, "P69905", x.UniProtID)
	assert.Equal(t, "Homo sapiens", x.Organism)

	// synthetic construct without mapping
	x, err = f.Fetch(ctx, "1SYN")
	require.NoError(t, err)
	assert.Empty(t, x.UniProtID)
	assert.Empty(t, x.Organism)

	_, err = f.Fetch(ctx, "9ZZZ")
	require.Error(t, err)
	assert.Equal(t, catalog.RemoteNotFound, catalog.KindOf(err))
}
