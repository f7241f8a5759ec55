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

	"github.com/gnames/gn"
	"github.com/gnames/protdb/pkg/remote"
	"github.com/spf13/cobra"
)

// getGetCmd returns the get command.
func getGetCmd() *cobra.Command {
	var format string

	getCmd := &cobra.Command{
		Use:   "get ACCESSION",
		Short: "Show a catalogued protein by its exact PDB accession",
		Long: `Get prints the protein with the given PDB accession together with
its structure data. Use 'protdb search' for partial matches.

Examples:
  protdb get 4HHB
  protdb get 4hhb --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args, format)
		},
	}

	getCmd.Flags().StringVarP(&format, "format", "f", "yaml",
		"output format: json, yaml, csv, tsv")
	return getCmd
}

func runGet(_ *cobra.Command, args []string, format string) error {
	ctx := context.Background()

	s, err := openCatalog(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.Close()

	e, err := s.cat.Get(ctx, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if e == nil {
		gn.Warn("Protein <em>%s</em> is not in the catalog",
			remote.NormalizeAccession(args[0]))
		return nil
	}

	if err = printEntry(*e, format); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
