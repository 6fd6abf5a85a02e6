/*
 * shell.go, part of gonomen.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chimie3d/gonomen/explorer"
	"github.com/spf13/cobra"
)

const shellHelp = `Scrieți un nume (de ex. "2-metilbutan") sau o comandă:
  :open N   deschide izomerul N
  :back     revine la compusul părinte
  :help     afișează acest mesaj
  :quit     iese`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Search compounds and browse their isomers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(a.explorer.NewSession(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads one query or command per line from in until :quit or the
// end of the input. Errors of a single line are printed and the shell goes on.
func runShell(S *explorer.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, shellHelp)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var r *explorer.Result
		var err error
		fields := strings.Fields(line)
		switch fields[0] {
		case ":quit", ":q", ":exit":
			return nil
		case ":help":
			fmt.Fprintln(out, shellHelp)
			continue
		case ":back":
			r, err = S.Back()
		case ":open":
			if len(fields) != 2 {
				err = errors.New("folosire: :open N")
				break
			}
			i, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				err = fmt.Errorf("%q nu este un număr", fields[1])
				break
			}
			r, err = S.OpenIsomer(i)
		default:
			r, err = S.Show(line)
		}
		if err != nil {
			fmt.Fprintln(out, "Eroare:", message(err))
			continue
		}
		if err := show(out, r, S.Parent()); err != nil {
			return err
		}
	}
}

func message(err error) string {
	switch {
	case errors.Is(err, explorer.ErrNoParent):
		return "nu există un compus părinte"
	case errors.Is(err, explorer.ErrIsomerIndex):
		return "nu există izomerul cerut"
	}
	return err.Error()
}

// show prints a result and the isomers that can be opened from it.
func show(w io.Writer, r *explorer.Result, parent *explorer.Result) error {
	fmt.Fprintf(w, "%s\n  Formula: %s (%.3f g/mol)\n  Tip: %s\n", r.Name, r.Formula, r.MolarMass, r.Kind.Label())
	for _, l := range strings.Split(r.Description, "\n") {
		fmt.Fprintln(w, "  "+l)
	}
	if parent != nil {
		fmt.Fprintf(w, "  Izomer al: %s (:back pentru a reveni)\n", parent.Name)
	}
	if r.Isomers == nil {
		return nil
	}
	return records(w, r.Isomers.Records)
}
