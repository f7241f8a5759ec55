package iocatalog_test

import (
	"context"
	"testing"

	"github.com/gnames/protdb/internal/iocatalog"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestAll(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	ctx := context.Background()
	cat := newCatalog(t, newFixture())

	_, err := cat.Ingest(ctx, "1CRN")
	require.NoError(t, err)

	accs := []string{"4hhb", "1CRN", "9ZZZ", "4HHB", "", "2NMR", "5DWN"}
	report := iocatalog.IngestAll(ctx, cat, accs,
		iocatalog.BatchOptions{Jobs: 3})

	assert.Len(t, report.RunID, 36)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "4HHB", report.Results[0].Accession)
	assert.Equal(t, "1CRN", report.Results[1].Accession)
	assert.Equal(t, "2NMR", report.Results[2].Accession)
	assert.Equal(t, 2, report.Count(catalog.Added))
	assert.Equal(t, 1, report.Count(catalog.AlreadyExists))

	require.Len(t, report.Failures, 2)
	assert.Equal(t, "9ZZZ", report.Failures[0].Accession)
	assert.Equal(t, catalog.RemoteNotFound,
		catalog.KindOf(report.Failures[0].Err))
	assert.Equal(t, "5DWN", report.Failures[1].Accession)
	assert.Equal(t, catalog.RemoteUnavailable,
		catalog.KindOf(report.Failures[1].Err))

	stats, err := cat.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.NoError(t, report.Err())
}

func TestIngestAllFailed(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	cat := newCatalog(t, newFixture())
	report := iocatalog.IngestAll(context.Background(), cat,
		[]string{"9ZZZ", "5DWN"}, iocatalog.BatchOptions{Jobs: 2})
	assert.Empty(t, report.Results)
	assert.Len(t, report.Failures, 2)
	assert.Error(t, report.Err())
}

func TestIngestAllEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database test in short mode")
	}
	cat := newCatalog(t, newFixture())
	report := iocatalog.IngestAll(context.Background(), cat, nil,
		iocatalog.BatchOptions{})
	assert.Empty(t, report.Results)
	assert.Empty(t, report.Failures)
	assert.NoError(t, report.Err())
}
