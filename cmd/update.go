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
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/protdb/internal/iocatalog"
	"github.com/gnames/protdb/pkg/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// getUpdateCmd returns the update command.
func getUpdateCmd() *cobra.Command {
	var upd catalog.Update
	var method string
	var resolution float64
	var noResolution bool

	updateCmd := &cobra.Command{
		Use:   "update ACCESSION",
		Short: "Edit fields of a catalogued protein",
		Long: `Update changes the stored fields of a protein and its structure.
Only the fields given as flags are changed, the rest keep their current
values. Protein and structure rows are updated in one transaction.

An empty --method clears the method, --no-resolution clears the
resolution.

Examples:
  protdb update 4HHB --name "Deoxyhemoglobin"
  protdb update 4HHB --resolution 1.8 --ligand=false
  protdb update 2NMR --method "SOLUTION NMR" --no-resolution`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, upd, method, resolution, noResolution)
		},
	}

	f := updateCmd.Flags()
	f.StringVar(&upd.Name, "name", "", "protein name")
	f.StringVar(&upd.Organism, "organism", "", "source organism")
	f.StringVar(&upd.Function, "function", "", "function description")
	f.IntVar(&upd.AALength, "aa-length", 0, "number of residues")
	f.Float64Var(&upd.MolecularWeight, "weight", 0,
		"molecular weight in kDa")
	f.StringVar(&method, "method", "", "experimental method")
	f.Float64Var(&resolution, "resolution", 0, "resolution in angstroms")
	f.BoolVar(&noResolution, "no-resolution", false, "clear resolution")
	f.BoolVar(&upd.LigandPresent, "ligand", false,
		"structure contains a ligand")
	updateCmd.MarkFlagsMutuallyExclusive("resolution", "no-resolution")

	return updateCmd
}

func runUpdate(
	cmd *cobra.Command,
	args []string,
	flags catalog.Update,
	method string,
	resolution float64,
	noResolution bool,
) error {
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
		err = iocatalog.ProteinNotFoundError(strings.ToUpper(args[0]))
		gn.PrintErrorMessage(err)
		return err
	}

	upd := applyUpdateFlags(
		cmd.Flags(), catalog.UpdateFromEntry(*e),
		flags, method, resolution, noResolution,
	)

	res, err := s.cat.Update(ctx, upd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("<em>%s</em>: %s", res.Accession, res.Message)
	return nil
}

// applyUpdateFlags copies the values of the flags set by the user to upd.
func applyUpdateFlags(
	fs *pflag.FlagSet,
	upd catalog.Update,
	flags catalog.Update,
	method string,
	resolution float64,
	noResolution bool,
) catalog.Update {
	if fs.Changed("name") {
		upd.Name = flags.Name
	}
	if fs.Changed("organism") {
		upd.Organism = flags.Organism
	}
	if fs.Changed("function") {
		upd.Function = flags.Function
	}
	if fs.Changed("aa-length") {
		upd.AALength = flags.AALength
	}
	if fs.Changed("weight") {
		upd.MolecularWeight = flags.MolecularWeight
	}
	if fs.Changed("ligand") {
		upd.LigandPresent = flags.LigandPresent
	}
	if fs.Changed("method") {
		upd.Method = nil
		if m := strings.TrimSpace(method); m != "" {
			upd.Method = &m
		}
	}
	switch {
	case noResolution:
		upd.Resolution = nil
	case fs.Changed("resolution"):
		r := resolution
		upd.Resolution = &r
	}
	return upd
}
