/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/protdb/internal/iocatalog"
	"github.com/gnames/protdb/internal/iofs"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/spf13/cobra"
)

// getIngestCmd returns the ingest command.
func getIngestCmd() *cobra.Command {
	var (
		file  string
		jobs  int
		quiet bool
	)

	ingestCmd := &cobra.Command{
		Use:   "ingest [ACCESSION...]",
		Short: "Add proteins to the catalog by PDB accession",
		Long: `Ingest fetches structural data from RCSB PDB and sequence data
from UniProtKB and stores them as a catalogued protein.

Accessions are case-insensitive. Accessions that are already in the
catalog are reported and left unchanged. A failed accession does not
stop the rest of the batch.

Remote fetches run concurrently (--jobs, default from jobs_number in
config.yaml), writes to the catalog run one at a time.

Examples:
  protdb ingest 4HHB
  protdb ingest 4HHB 1CRN 2NMR
  protdb ingest --file accessions.txt --jobs 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, args, file, jobs, quiet)
		},
	}

	ingestCmd.Flags().StringVarP(&file, "file", "i", "",
		"file with one accession per line ('#' starts a comment)")
	ingestCmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"number of concurrent remote fetches")
	ingestCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"do not show progress bar")

	return ingestCmd
}

func runIngest(
	_ *cobra.Command,
	args []string,
	file string,
	jobs int,
	quiet bool,
) error {
	ctx := context.Background()

	accessions := args
	if file != "" {
		fromFile, err := iofs.ReadAccessions(file)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		accessions = append(accessions, fromFile...)
	}
	if len(accessions) == 0 {
		gn.Warn("No accessions given. Use arguments or --file.")
		return nil
	}

	if jobs <= 0 {
		jobs = cfg.JobsNumber
	}

	s, err := openCatalog(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.Close()

	report := iocatalog.IngestAll(ctx, s.cat, accessions,
		iocatalog.BatchOptions{
			Jobs:     jobs,
			Progress: !quiet && len(accessions) > 1,
		},
	)

	for _, v := range report.Results {
		gn.Info("<em>%s</em>: %s", v.Accession, v.Message)
	}
	for _, v := range report.Failures {
		gn.PrintErrorMessage(v.Err)
	}

	gn.Info(
		"Added: <em>%s</em>, already present: <em>%s</em>, "+
			"failed: <em>%s</em> (%s)",
		humanize.Comma(int64(report.Count(catalog.Added))),
		humanize.Comma(int64(report.Count(catalog.AlreadyExists))),
		humanize.Comma(int64(len(report.Failures))),
		gnfmt.TimeString(report.Duration.Seconds()),
	)

	if err = report.Err(); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
