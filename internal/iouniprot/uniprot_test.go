package iouniprot_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gnames/protdb/internal/iorest"
	"github.com/gnames/protdb/internal/iouniprot"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtures = map[string]string{
	"/P69905.json": `{
		"primaryAccession": "P69905",
		"sequence": {"value": "MVLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTKTYFPHF", "length": 47},
		"comments": [
			{"commentType": "SUBUNIT", "texts": [{"value": "Heterotetramer"}]},
			{"commentType": "FUNCTION", "texts": [
				{"value": "Involved in oxygen transport from the lung."},
				{"value": "Second text"}
			]},
			{"commentType": "FUNCTION", "texts": [{"value": "Later function"}]}
		]
	}`,
	"/Q00001.json": `{
		"sequence": {"value": "GGGG"},
		"comments": [{"commentType": "SIMILARITY", "texts": [{"value": "x"}]}]
	}`,
	"/Q00002.json": `{"sequence": {"value": "AC"}}`,
	"/OBSOLETE.json": `{"entryType": "Inactive"}`,
}

func TestSequences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			body, ok := fixtures[r.URL.Path]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(body))
		}))
	defer srv.Close()

	f := iouniprot.NewSequences(iorest.New(time.Second), srv.URL)
	ctx := context.Background()

	rec, err := f.Fetch(ctx, "P69905")
	require.NoError(t, err)
	assert.Equal(t, "MVLSPADKTNVKAAWGKVGAHAGEYGAEALERMFLSFPTTKTYFPHF",
		rec.Sequence)
	assert.Equal(t, "Involved in oxygen transport from the lung.",
		rec.Function)

	rec, err = f.Fetch(ctx, "Q00001")
	require.NoError(t, err)
	assert.Equal(t, remote.NoFunction, rec.Function)

	rec, err = f.Fetch(ctx, "Q00002")
	require.NoError(t, err)
	assert.Equal(t, "No description available", rec.Function)

	_, err = f.Fetch(ctx, "OBSOLETE")
	require.Error(t, err)
	assert.Equal(t, catalog.RemoteNotFound, catalog.KindOf(err))
	assert.Contains(t, err.Error(), "empty sequence")
	assert.NotContains(t, err.Error(), "status 200")

	_, err = f.Fetch(ctx, "P99999")
	require.Error(t, err)
	assert.Equal(t, catalog.RemoteNotFound, catalog.KindOf(err))
}
