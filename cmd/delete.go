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
	"github.com/spf13/cobra"
)

// getDeleteCmd returns the delete command.
func getDeleteCmd() *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:   "delete ACCESSION",
		Short: "Remove a protein and its structure from the catalog",
		Long: `Delete removes a catalogued protein together with its structure
record. The accession is case-insensitive.

Examples:
  protdb delete 4HHB`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
	return deleteCmd
}

func runDelete(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := openCatalog(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer s.Close()

	res, err := s.cat.Delete(ctx, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info(res.Message)
	return nil
}
