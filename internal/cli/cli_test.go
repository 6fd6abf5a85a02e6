/*
 * cli_test.go, part of gonomen.
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
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/iupac"
	"github.com/chimie3d/gonomen/multixyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(in string, args ...string) (string, error) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(in))
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFormula(Te *testing.T) {
	out, err := run("", "formula", "hexan")
	require.NoError(Te, err)
	assert.Contains(Te, out, "C₆H₁₄")
	assert.Contains(Te, out, "86.1")

	out, err = run("", "formula", "dioxid", "de", "carbon")
	require.NoError(Te, err)
	assert.Contains(Te, out, "CO₂")
}

func TestParse(Te *testing.T) {
	out, err := run("", "parse", "2-metilbutan")
	require.NoError(Te, err)
	var got struct {
		Name   string           `json:"name"`
		Parsed iupac.ParsedName `json:"parsed"`
	}
	require.NoError(Te, json.Unmarshal([]byte(out), &got))
	assert.Equal(Te, "2-metil-butan", got.Name)
	assert.Equal(Te, 4, got.Parsed.ChainLength)

	_, err = run("", "parse", "xyz")
	assert.True(Te, errors.Is(err, iupac.ErrUnresolvableChainLength))
}

func TestBuild(Te *testing.T) {
	out, err := run("", "build", "etan")
	require.NoError(Te, err)
	mol, comment, err := chem.XYZRead(strings.NewReader(out))
	require.NoError(Te, err)
	assert.Equal(Te, 8, mol.Len())
	assert.Equal(Te, "etan", comment)

	out, err = run("", "build", "--format", "json", "benzen")
	require.NoError(Te, err)
	var m chem.Molecule
	require.NoError(Te, json.Unmarshal([]byte(out), &m))
	assert.Equal(Te, "C₆H₆", chem.Formula(&m))
	assert.Len(Te, m.Bonds(), 12)

	path := filepath.Join(Te.TempDir(), "propanol.xyz")
	_, err = run("", "build", "--center", "-o", path, "propan-2-ol")
	require.NoError(Te, err)
	f, err := os.Open(path)
	require.NoError(Te, err)
	defer f.Close()
	mol, _, err = chem.XYZRead(f)
	require.NoError(Te, err)
	assert.Equal(Te, 12, mol.Len())
	c := chem.MassCenter(mol)
	assert.InDelta(Te, 0, c.X, 1e-3)
	assert.InDelta(Te, 0, c.Y, 1e-3)
	assert.InDelta(Te, 0, c.Z, 1e-3)

	_, err = run("", "build", "--format", "pdb", "etan")
	assert.ErrorContains(Te, err, "output.format")
}

func TestIsomers(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "butanol.xyz.gz")
	out, err := run("", "isomers", "-o", path, "butan-2-ol")
	require.NoError(Te, err)
	for _, name := range []string{"butan-2-ol", "butan-1-ol", "metil propil eter", "dietil eter", "Izomerie de poziție"} {
		assert.Contains(Te, out, name)
	}
	r, err := multixyz.Open(path)
	require.NoError(Te, err)
	mols, comments, err := r.ReadAll()
	require.NoError(Te, err)
	assert.Len(Te, mols, 4)
	assert.Equal(Te, "butan-2-ol", comments[0])
	for _, m := range mols {
		assert.Equal(Te, "C₄H₁₀O", chem.Formula(m))
	}

	out, err = run("", "--max-isomers", "2", "isomers", "hexan")
	require.NoError(Te, err)
	assert.Contains(Te, out, "2-metil-pentan")
	assert.NotContains(Te, out, "3-metil-pentan")

	out, err = run("", "isomers", "propan")
	require.NoError(Te, err)
	assert.Contains(Te, out, "nu s-au găsit izomeri")
}

func TestAlkanes(Te *testing.T) {
	out, err := run("", "alkanes", "5")
	require.NoError(Te, err)
	assert.Contains(Te, out, "C5H12")
	assert.Contains(Te, out, "2,2-dimetil-propan")

	path := filepath.Join(Te.TempDir(), "heptanes.zst")
	_, err = run("", "alkanes", "-o", path, "7")
	require.NoError(Te, err)
	r, err := multixyz.Open(path)
	require.NoError(Te, err)
	mols, _, err := r.ReadAll()
	require.NoError(Te, err)
	assert.Len(Te, mols, 9)

	for _, bad := range []string{"0", "11", "cinci"} {
		_, err = run("", "alkanes", bad)
		assert.Error(Te, err, bad)
	}
}

func TestStats(Te *testing.T) {
	chart := filepath.Join(Te.TempDir(), "counts.png")
	out, err := run("", "stats", "--from", "4", "--to", "7", "--plot", chart)
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 5)
	assert.Equal(Te, []string{"7", "9"}, strings.Fields(lines[4]))
	info, err := os.Stat(chart)
	require.NoError(Te, err)
	assert.Positive(Te, info.Size())

	out, err = run("", "--max-skeletons", "5", "stats", "--from", "8", "--to", "8")
	require.NoError(Te, err)
	assert.Contains(Te, out, "+")

	_, err = run("", "stats", "--from", "5", "--to", "4")
	assert.Error(Te, err)
}

func TestCatalog(Te *testing.T) {
	out, err := run("", "catalog")
	require.NoError(Te, err)
	assert.Contains(Te, out, "benzene")
	assert.Contains(Te, out, "Ciclohexan")
	assert.Contains(Te, out, "C₃H₆O")
}

func TestShell(Te *testing.T) {
	in := "butan-2-ol\n:open 1\n:open 3\n:back\n:back\n:open x\n:open 99\nxyz\n:quit\nhexan\n"
	out, err := run(in, "shell")
	require.NoError(Te, err)
	assert.Contains(Te, out, "Izomer al: butan-2-ol")
	assert.Contains(Te, out, "dietil eter")
	assert.Contains(Te, out, "nu există un compus părinte")
	assert.Contains(Te, out, `"x" nu este un număr`)
	assert.Contains(Te, out, "nu există izomerul cerut")
	assert.Contains(Te, out, iupac.ChainLengthMessage)
	assert.NotContains(Te, out, "C₆H₁₄", "nothing is read after :quit")

	out, err = run("etan\n", "shell")
	require.NoError(Te, err)
	assert.Contains(Te, out, "C₂H₆")
}

func TestBonds(Te *testing.T) {
	out, err := run("", "bonds", "benzen")
	require.NoError(Te, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(Te, lines, 4)
	assert.Contains(Te, lines[0], "C₆H₆")
	assert.Regexp(Te, `^C-H\s+6\s`, lines[2])
	assert.Regexp(Te, `^C:C\s+6\s`, lines[3])

	out, err = run("", "bonds", "--histogram", "3", "etanol")
	require.NoError(Te, err)
	assert.Equal(Te, 8, strings.Count(out, "#"), "every bond of ethanol lands in one bin")
	assert.Equal(Te, 3, strings.Count(out, "["))
}
