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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued proteins",
		Long: `List prints one line per catalogued protein in ingestion order:
PDB accession, UniProt accession, ligand flag and protein name.

Use 'protdb export' for all fields.

Examples:
  protdb list`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	return listCmd
}

func runList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	s, err := openCatalog(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.Close()

	entries, err := s.cat.List(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(entries) == 0 {
		gn.Info("Catalog is empty")
		return nil
	}

	for _, e := range entries {
		ligand := "no"
		if e.LigandPresent {
			ligand = "yes"
		}
		line := gnfmt.ToCSV(
			[]string{e.Accession, e.UniProtID, ligand, e.Name}, '\t',
		)
		fmt.Fprintln(stdout, line)
	}
	return nil
}
