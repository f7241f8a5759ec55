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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create catalog schema",
		Long: `Create the protein catalog schema from scratch.

This command:
  1. Connects to SQLite or PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Drops existing tables and data
  4. Creates the protein and protein_structure tables

Use --force to skip confirmation.

Examples:
  protdb create
  protdb create --force
  protdb create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(_ *cobra.Command, _ []string, force bool) error {
	ctx := context.Background()

	op, err := connect(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables && !force {
		gn.Warn("\nWarning: Catalog contains existing tables.")
		gn.Warn("Creating schema will drop ALL existing tables and data.")
		fmt.Print("\nDo you want to continue? (yes/no): ")

		ok, err := confirm(os.Stdin)
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	gn.Info("Creating schema...")
	if err = ioschema.NewManager(op).Create(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nCatalog schema creation complete!")
	gn.Info("Run 'protdb ingest ACCESSION' to add proteins.")
	return nil
}

// confirm reads one line and reports if it is "yes" or "y".
func confirm(r io.Reader) (bool, error) {
	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
