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
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/ioexport"
	"github.com/gnames/protdb/internal/iofs"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var format, output string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole catalog as JSON, CSV, TSV or YAML",
		Long: `Export writes every catalogued protein with its structure data.
Output goes to stdout unless --output is given.

Examples:
  protdb export
  protdb export --format csv --output proteins.csv
  protdb export -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, format, output)
		},
	}

	exportCmd.Flags().StringVarP(&format, "format", "f", "json",
		"output format: json, csv, tsv, yaml")
	exportCmd.Flags().StringVarP(&output, "output", "o", "",
		"file to write instead of stdout")
	return exportCmd
}

func runExport(
	_ *cobra.Command,
	_ []string,
	format, output string,
) error {
	ctx := context.Background()

	f, err := ioexport.ParseFormat(format)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

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

	var w io.Writer = stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			err = iofs.CreateFileError(output, err)
			gn.PrintErrorMessage(err)
			return err
		}
		defer file.Close()
		w = file
	}

	if err = ioexport.Write(w, entries, f); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if output != "" {
		gn.Info("Exported <em>%d</em> proteins to <em>%s</em>",
			len(entries), output)
	}
	return nil
}
