/*
 * bonds_test.go, part of gonomen.
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

package chemstat

import (
	"math"
	"testing"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/builder"
	"github.com/chimie3d/gonomen/geometry"
	"github.com/chimie3d/gonomen/iupac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBondStats(Te *testing.T) {
	mol := builder.Build(iupac.MustParse("propan-2-ol"))
	stats := BondStats(mol)
	pairs := make(map[string]BondStat)
	for _, s := range stats {
		pairs[s.Pair] = s
	}
	require.Contains(Te, pairs, "C-C")
	require.Contains(Te, pairs, "C-H")
	require.Contains(Te, pairs, "C-O")
	require.Contains(Te, pairs, "H-O")
	assert.Equal(Te, 2, pairs["C-C"].Count)
	assert.Equal(Te, 7, pairs["C-H"].Count)
	assert.Equal(Te, 1, pairs["C-O"].Count)
	assert.InDelta(Te, math.Hypot(geometry.CarbonCarbon, geometry.ZigZag), pairs["C-C"].Mean, 1e-9)
	assert.InDelta(Te, 0, pairs["C-C"].Std, 1e-9)
	assert.LessOrEqual(Te, pairs["C-H"].Min, pairs["C-H"].Mean)
	assert.GreaterOrEqual(Te, pairs["C-H"].Max, pairs["C-H"].Mean)
	for i := 1; i < len(stats); i++ {
		assert.Less(Te, stats[i-1].Pair, stats[i].Pair)
	}
}

func TestPair(Te *testing.T) {
	mol := chem.NewMolecule(3)
	o := mol.AddAtom("O", r3.Vec{})
	c := mol.AddAtom("C", r3.Vec{X: 1.2})
	mol.MustAddBond(o, c, chem.Double)
	assert.Equal(Te, "C=O", Pair(mol, mol.Bonds()[0]))
	l := Lengths(mol)
	assert.InDelta(Te, 1.2, l["C=O"][0], 1e-12)
}

func TestHistogram(Te *testing.T) {
	d := Dividers(1, 2, 4)
	assert.Len(Te, d, 5)
	assert.Equal(Te, 1.0, d[0])
	h, err := Histogram([]float64{1.0, 1.1, 1.3, 1.6, 2.0, 0.5, 3}, d)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{2, 1, 1, 1}, h)

	h, err = Histogram(nil, d)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0, 0, 0}, h)

	_, err = Histogram([]float64{1}, []float64{2, 1})
	assert.Error(Te, err)
}
