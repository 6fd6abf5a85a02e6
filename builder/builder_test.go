/*
 * builder_test.go, part of gonomen.
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

package builder

import (
	"testing"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/chemgraph"
	"github.com/chimie3d/gonomen/geometry"
	"github.com/chimie3d/gonomen/iupac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formulas = []struct {
	name, formula string
}{
	{"metan", "CH₄"},
	{"etan", "C₂H₆"},
	{"hexan", "C₆H₁₄"},
	{"propan-2-ol", "C₃H₈O"},
	{"metanol", "CH₄O"},
	{"but-1-ena", "C₄H₈"},
	{"but-1-ina", "C₄H₆"},
	{"but-1,3-diena", "C₄H₆"},
	{"2,2-dimetilpropan", "C₅H₁₂"},
	{"2-metilpropan-2-ol", "C₄H₁₀O"},
	{"3-etilpentan", "C₇H₁₆"},
	{"4-propilheptan", "C₁₀H₂₂"},
	{"4-izopropilheptan", "C₁₀H₂₂"},
	{"3-tert-butil-hexan", "C₁₀H₂₂"},
	{"4-sec-butil-heptan", "C₁₁H₂₄"},
	{"cis-pent-2-ena", "C₅H₁₀"},
	{"2-clor-propan", "C₄H₁₀"},
}

func TestBuildFormulas(Te *testing.T) {
	for _, tt := range formulas {
		Te.Run(tt.name, func(t *testing.T) {
			mol := Build(iupac.MustParse(tt.name))
			assert.Equal(t, tt.formula, chem.Formula(mol))
		})
	}
}

func TestUnbranchedAlkanes(Te *testing.T) {
	for n := 1; n <= 10; n++ {
		mol := Build(iupac.ParsedName{ChainLength: n})
		assert.Equal(Te, n, mol.Count("C"))
		assert.Equal(Te, 2*n+2, mol.Count("H"))
	}
}

// Every carbon ends with four bonds, no atom goes over its valence,
// and the structure is in one piece.
func TestValence(Te *testing.T) {
	for _, tt := range formulas {
		Te.Run(tt.name, func(t *testing.T) {
			mol := Build(iupac.MustParse(tt.name))
			require.NoError(t, mol.Corrupted())
			assert.True(t, chemgraph.Connected(mol))
			for i := 0; i < mol.Len(); i++ {
				a := mol.Atom(i)
				max, _ := chem.MaxValence(a.Symbol)
				assert.Equal(t, float64(max), mol.Valence(i), "%s atom %d", a.Symbol, i)
			}
		})
	}
}

func TestBondLengths(Te *testing.T) {
	mol := Build(iupac.MustParse("2-metilbutan-2-ol"))
	for _, b := range mol.Bonds() {
		s1, s2 := mol.Atom(b.A).Symbol, mol.Atom(b.B).Symbol
		if s1 == "C" && s2 == "H" || s1 == "H" && s2 == "C" {
			assert.InDelta(Te, geometry.CarbonHydrogen, chem.Distance(mol, b.A, b.B), 1e-9)
		}
		if s1 == "O" && s2 == "H" || s1 == "H" && s2 == "O" {
			assert.InDelta(Te, geometry.OxygenHydrogen, chem.Distance(mol, b.A, b.B), 1e-9)
		}
	}
}

func TestBondOrders(Te *testing.T) {
	mol := Build(iupac.ParsedName{ChainLength: 5, DoubleBonds: []int{1}, TripleBonds: []int{3}})
	orders := map[chem.BondOrder]int{}
	for _, b := range mol.Bonds() {
		orders[b.Order]++
	}
	assert.Equal(Te, 1, orders[chem.Double])
	assert.Equal(Te, 1, orders[chem.Triple])
	assert.Equal(Te, "C₅H₆", chem.Formula(mol))
}

// More substituents than room on a carbon: the extra ones are dropped.
func TestCrowdedCarbon(Te *testing.T) {
	tests := []struct {
		name    string
		p       iupac.ParsedName
		carbons int
		oxygens int
	}{
		{"three methyls on C2 of propane", iupac.MustParse("2,2,2-trimetilpropan"), 5, 0},
		{"two methyls on a double-bonded carbon", iupac.MustParse("2,2-dimetilbut-2-ena"), 5, 0},
		{"hydroxyl on a quaternary carbon", iupac.MustParse("2,2-dimetilpropan-2-ol"), 5, 0},
		{"substituent off the chain", iupac.ParsedName{ChainLength: 3, Substituents: []iupac.Substituent{iupac.NewSubstituent(7, "metil")}}, 3, 0},
		{"hydroxyl off the chain", iupac.ParsedName{ChainLength: 2, Alcohol: 5}, 2, 0},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			mol := Build(tt.p)
			assert.Equal(t, tt.carbons, mol.Count("C"))
			assert.Equal(t, tt.oxygens, mol.Count("O"))
			assert.NoError(t, mol.Corrupted())
		})
	}
	assert.Equal(Te, 0, Build(iupac.ParsedName{}).Len())
}

// The substituents kept on a crowded carbon are the first ones in list
// order, whatever their size.
func TestCrowdedCarbonOrder(Te *testing.T) {
	subs := func(types ...string) []iupac.Substituent {
		ret := make([]iupac.Substituent, len(types))
		for i, t := range types {
			ret[i] = iupac.NewSubstituent(2, t)
		}
		return ret
	}
	tests := []struct {
		name     string
		p        iupac.ParsedName
		carbons  int
		branches []int
	}{
		{"propane, ethyl and methyl kept, propyl dropped",
			iupac.ParsedName{ChainLength: 3, Substituents: subs("etil", "metil", "propil")}, 6, []int{2, 1}},
		{"propane, propyl and ethyl kept, methyl dropped",
			iupac.ParsedName{ChainLength: 3, Substituents: subs("propil", "etil", "metil")}, 8, []int{3, 2}},
		{"but-2-ene, propyl kept, methyl dropped",
			iupac.ParsedName{ChainLength: 4, DoubleBonds: []int{2}, Substituents: subs("propil", "metil")}, 7, []int{3}},
		{"but-2-ene, methyl kept, propyl dropped",
			iupac.ParsedName{ChainLength: 4, DoubleBonds: []int{2}, Substituents: subs("metil", "propil")}, 5, []int{1}},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			mol := Build(tt.p)
			require.NoError(t, mol.Corrupted())
			assert.Equal(t, tt.carbons, mol.Count("C"))
			assert.Equal(t, 2*tt.carbons+2-2*len(tt.p.DoubleBonds), mol.Count("H"))
			assert.Equal(t, tt.branches, branchSizes(mol, 1, tt.p.ChainLength))
		})
	}
}

// branchSizes returns the number of carbons of each branch on chain atom
// anchor, in the order the branches were attached. Chain carbons are the
// first n atoms.
func branchSizes(mol *chem.Molecule, anchor, n int) []int {
	var ret []int
	for _, root := range mol.Neighbors(anchor) {
		if root < n || mol.Atom(root).Symbol != "C" {
			continue
		}
		seen := map[int]bool{anchor: true, root: true}
		queue := []int{root}
		size := 0
		for len(queue) > 0 {
			a := queue[0]
			queue = queue[1:]
			size++
			for _, b := range mol.Neighbors(a) {
				if !seen[b] && mol.Atom(b).Symbol == "C" {
					seen[b] = true
					queue = append(queue, b)
				}
			}
		}
		ret = append(ret, size)
	}
	return ret
}

func TestDeterministic(Te *testing.T) {
	p := iupac.MustParse("3-etil-2,4-dimetilhexan-1-ol")
	assert.Equal(Te, Build(p).Positions(), Build(p).Positions())
}
