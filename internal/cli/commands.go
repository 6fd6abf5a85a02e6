/*
 * commands.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/chemplot"
	"github.com/chimie3d/gonomen/chemstat"
	"github.com/chimie3d/gonomen/internal/config"
	"github.com/chimie3d/gonomen/internal/logging"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/chimie3d/gonomen/iupac"
	"github.com/chimie3d/gonomen/multixyz"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse NAME",
		Short: "Print the parsed form of a name as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := iupac.Parse(query(args))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Name   string           `json:"name"`
				Parsed iupac.ParsedName `json:"parsed"`
			}{iupac.FullName(p), p})
		},
	}
}

func newBuildCmd(a *app) *cobra.Command {
	var out string
	var center bool
	cmd := &cobra.Command{
		Use:   "build NAME",
		Short: "Build the 3D structure of a compound",
		Long: `Build the 3D structure of a compound, given by name or by catalog key,
and write it as XYZ or JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.explorer.Search(query(args))
			if err != nil {
				return err
			}
			mol := r.Structure.Copy()
			if center {
				chem.MassCentrate(mol)
			}
			w, closer, err := output(cmd.OutOrStdout(), out)
			if err != nil {
				return err
			}
			if a.cfg.Output.Format == config.FormatJSON {
				err = chem.JSONWrite(w, mol)
			} else {
				err = chem.XYZWrite(w, mol.Coords(), mol, r.Name, a.cfg.Output.Precision)
			}
			if err2 := closer(); err == nil {
				err = err2
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&center, "center", false, "move the center of mass to the origin")
	cmd.Flags().String("format", config.FormatXYZ, "output format: xyz or json")
	cmd.Flags().Int("precision", chem.DefaultXYZPrecision, "decimals of XYZ coordinates")
	return cmd
}

func newFormulaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formula NAME",
		Short: "Print the molecular formula and the molar mass",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.explorer.Search(query(args))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.3f g/mol\n", r.Name, r.Formula, r.MolarMass)
			return err
		},
	}
}

func newIsomersCmd(a *app) *cobra.Command {
	var archive string
	cmd := &cobra.Command{
		Use:   "isomers NAME",
		Short: "List the isomers of a compound",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.explorer.Search(query(args))
			if err != nil {
				return err
			}
			if r.Isomers == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): nu s-au găsit izomeri\n", r.Name, r.Formula)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", r.Name, r.Isomers.Formula)
			if err := records(cmd.OutOrStdout(), r.Isomers.Records); err != nil {
				return err
			}
			return a.archive(archive, r.Isomers.Records)
		},
	}
	cmd.Flags().StringVarP(&archive, "output", "o", "", "write the structures to this multi-frame XYZ file (.xyz, .gz or .zst)")
	cmd.Flags().Int("precision", chem.DefaultXYZPrecision, "decimals of XYZ coordinates")
	return cmd
}

func newAlkanesCmd(a *app) *cobra.Command {
	var archive string
	cmd := &cobra.Command{
		Use:   "alkanes N",
		Short: "List the alkanes with N carbons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > isomer.MaxCarbons {
				return fmt.Errorf("the number of carbons must be between 1 and %d, got %q", isomer.MaxCarbons, args[0])
			}
			recs := a.generator.GenerateAll(n)
			fmt.Fprintf(cmd.OutOrStdout(), "C%dH%d\n", n, 2*n+2)
			if err := records(cmd.OutOrStdout(), recs); err != nil {
				return err
			}
			return a.archive(archive, recs)
		},
	}
	cmd.Flags().StringVarP(&archive, "output", "o", "", "write the structures to this multi-frame XYZ file (.xyz, .gz or .zst)")
	cmd.Flags().Int("precision", chem.DefaultXYZPrecision, "decimals of XYZ coordinates")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	var from, to int
	var chart string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count the alkane isomers for a range of carbon numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 1 || to < from {
				return fmt.Errorf("invalid range %d-%d", from, to)
			}
			var counts []chemplot.Count
			start := time.Now()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Carboni\tIzomeri\t")
			for n := from; n <= to; n++ {
				c, complete := a.generator.Count(n)
				mark := ""
				if !complete {
					mark = "+"
					a.log.Warn("skeleton limit reached, count is a lower bound", logging.Int("carbons", n))
				}
				fmt.Fprintf(tw, "%d\t%d%s\t\n", n, c, mark)
				counts = append(counts, chemplot.Count{Carbons: n, Isomers: c})
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			a.log.Debug("isomers counted", logging.Int("from", from), logging.Int("to", to),
				logging.Duration("elapsed", time.Since(start)))
			if chart == "" {
				return nil
			}
			title := fmt.Sprintf("Izomeri ai alcanilor C%d-C%d", from, to)
			if err := chemplot.SaveIsomerCounts(counts, title, chart); err != nil {
				return err
			}
			a.log.Info("chart written", logging.String("file", chart))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", isomer.MinCarbons, "smallest number of carbons")
	cmd.Flags().IntVar(&to, "to", isomer.MaxCarbons, "largest number of carbons")
	cmd.Flags().StringVar(&chart, "plot", "", "draw a bar chart to this file (png, svg, pdf)")
	return cmd
}

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the compounds known by key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := a.explorer.Catalog()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Cheie\tNume\tFormulă\tIzomeri\t")
			for _, k := range cat.Keys() {
				c, _ := cat.Lookup(k)
				set, _ := cat.Isomers(k)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t\n", k, c.Name, c.Formula(), set.Len())
			}
			return tw.Flush()
		},
	}
}

func newBondsCmd(a *app) *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "bonds NAME",
		Short: "Summarize the bond lengths of a structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.explorer.Search(query(args))
			if err != nil {
				return err
			}
			stats := chemstat.BondStats(r.Structure)
			if len(stats) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): nu are legături\n", r.Name, r.Formula)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", r.Name, r.Formula)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Legătură\tNumăr\tMedie\tAbatere\tMin\tMax\t")
			for _, s := range stats {
				fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\t\n", s.Pair, s.Count, s.Mean, s.Std, s.Min, s.Max)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if bins < 1 {
				return nil
			}
			var all []float64
			for _, l := range chemstat.Lengths(r.Structure) {
				all = append(all, l...)
			}
			lo, hi := all[0], all[0]
			for _, l := range all {
				lo, hi = min(lo, l), max(hi, l)
			}
			div := chemstat.Dividers(lo, hi, bins)
			h, err := chemstat.Histogram(all, div)
			if err != nil {
				return err
			}
			for i, c := range h {
				fmt.Fprintf(cmd.OutOrStdout(), "[%.3f, %.3f)\t%s\n", div[i], div[i+1], strings.Repeat("#", int(c)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "histogram", 0, "also print a histogram of all bond lengths with this many bins")
	return cmd
}

// records writes a numbered table of isomers.
func records(w io.Writer, recs []isomer.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNume\tTip\tDescriere\t")
	for i, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", i, r.Name, r.Kind.Label(), strings.ReplaceAll(r.Description, "\n", "; "))
	}
	return tw.Flush()
}

// archive writes the structures of recs to path, one frame each, named in
// the comment line. Nothing is written if path is empty.
func (a *app) archive(path string, recs []isomer.Record) error {
	if path == "" {
		return nil
	}
	w, err := multixyz.Create(path, a.cfg.Output.Precision)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err := w.WriteFrame(r.Structure, r.Name); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	a.log.Info("archive written", logging.String("file", path), logging.Int("frames", w.Frames()),
		logging.String("codec", multixyz.CodecFor(path).String()))
	return nil
}
