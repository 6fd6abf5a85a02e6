/*
 * root.go, part of gonomen.
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

// Package cli is the command line interface of gonomen.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chimie3d/gonomen/explorer"
	"github.com/chimie3d/gonomen/internal/config"
	"github.com/chimie3d/gonomen/internal/logging"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// app carries what the commands share. It is filled before any command runs.
type app struct {
	configPath string
	cfg        *config.Config
	log        logging.Logger
	explorer   *explorer.Explorer
	generator  *isomer.Generator
}

// NewRootCommand returns the gonomen command with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gonomen",
		Short: "Romanian IUPAC names to 3D structures and isomers",
		Long: `gonomen reads Romanian IUPAC names of simple organic compounds
(alkanes, alkenes, alkynes and alcohols with alkyl branches), builds their
3D structure with all hydrogens, and lists their structural isomers.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "console", "log format: console or json")
	pf.Int("max-isomers", isomer.DefaultMaxIsomers, "largest number of isomers listed")
	pf.Int("max-skeletons", isomer.DefaultMaxSkeletons, "raw carbon skeletons generated per alkane")

	root.AddCommand(
		newParseCmd(a),
		newBuildCmd(a),
		newFormulaCmd(a),
		newIsomersCmd(a),
		newAlkanesCmd(a),
		newStatsCmd(a),
		newBondsCmd(a),
		newCatalogCmd(a),
		newShellCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.With(logging.String("command", cmd.Name()))
	a.generator = isomer.NewGenerator(cfg.Isomers.MaxIsomers, cfg.Isomers.MaxSkeletons)
	a.explorer = explorer.New(explorer.WithGenerator(a.generator), explorer.WithLogger(a.log))
	a.log.Debug("configured",
		logging.Int("max_isomers", cfg.Isomers.MaxIsomers),
		logging.Int("max_skeletons", cfg.Isomers.MaxSkeletons),
		logging.String("output_format", cfg.Output.Format))
	return nil
}

// Execute runs the command line with os.Args and returns the exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

// query joins the arguments, so names with spaces need no quotes.
func query(args []string) string {
	return strings.Join(args, " ")
}

// output returns the file path, or w if path is empty or "-". The
// returned function closes the file.
func output(w io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
