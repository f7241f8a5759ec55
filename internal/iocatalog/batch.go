package iocatalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnfmt"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/gnames/protdb/pkg/remote"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BatchOptions configure IngestAll.
type BatchOptions struct {
	// Jobs is the number of concurrent ingestions, at least 1.
	Jobs int

	// Progress shows a progress bar on stderr.
	Progress bool
}

// Failure is an accession that could not be ingested.
type Failure struct {
	Accession string
	Err       error
}

// BatchReport summarizes IngestAll.
type BatchReport struct {
	RunID    string
	Results  []catalog.Result
	Failures []Failure
	Duration time.Duration
}

// Count returns the number of results with the outcome.
func (r BatchReport) Count(o catalog.Outcome) int {
	var res int
	for _, v := range r.Results {
		if v.Outcome == o {
			res++
		}
	}
	return res
}

// Err returns BatchFailedError if there were failures and nothing
// succeeded, nil otherwise.
func (r BatchReport) Err() error {
	if len(r.Failures) > 0 && len(r.Results) == 0 {
		return BatchFailedError(len(r.Failures))
	}
	return nil
}

// IngestAll ingests accessions concurrently. Duplicates (after
// normalization) are ingested once. A failed accession is recorded in the
// report and does not stop the batch. Results and failures keep the
// order of the input.
func IngestAll(
	ctx context.Context,
	cat catalog.Catalog,
	accessions []string,
	opts BatchOptions,
) BatchReport {
	start := time.Now()
	report := BatchReport{RunID: uuid.NewString()}
	accs := dedup(accessions)

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var bar *pb.ProgressBar
	if opts.Progress {
		bar = pb.Full.Start(len(accs))
		bar.Set("prefix", "Ingesting proteins: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	slog.Info("Batch ingestion started",
		"run_id", report.RunID,
		"accessions", len(accs),
		"jobs", jobs,
	)

	results := make([]catalog.Result, len(accs))
	errs := make([]error, len(accs))

	g := &errgroup.Group{}
	g.SetLimit(jobs)
	for i, acc := range accs {
		g.Go(func() error {
			results[i], errs[i] = cat.Ingest(ctx, acc)
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, acc := range accs {
		if errs[i] != nil {
			report.Failures = append(report.Failures,
				Failure{Accession: acc, Err: errs[i]})
			slog.Warn("Cannot ingest protein",
				"run_id", report.RunID,
				"accession", acc,
				"kind", catalog.KindOf(errs[i]).String(),
				"error", errs[i].Error(),
			)
			continue
		}
		report.Results = append(report.Results, results[i])
	}

	report.Duration = time.Since(start)
	slog.Info("Batch ingestion finished",
		"run_id", report.RunID,
		"added", report.Count(catalog.Added),
		"existing", report.Count(catalog.AlreadyExists),
		"failed", len(report.Failures),
		"duration", gnfmt.TimeString(report.Duration.Seconds()),
	)
	return report
}

func dedup(accessions []string) []string {
	seen := make(map[string]struct{}, len(accessions))
	var res []string
	for _, v := range accessions {
		acc := remote.NormalizeAccession(v)
		if acc == "" {
			continue
		}
		if _, ok := seen[acc]; ok {
			continue
		}
		seen[acc] = struct{}{}
		res = append(res, acc)
	}
	return res
}
