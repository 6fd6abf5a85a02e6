/*
 * builder.go, part of gonomen.
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

// Package builder turns a parsed name into a 3D structure.
//
// The main chain is laid out along x (geometry.Backbone). Substituents,
// then the hydroxyl group, then hydrogens are placed on the free tetrahedral
// directions of each chain carbon, in that order. An atom that runs out of
// directions or valence simply gets fewer groups; Build never fails.
package builder

import (
	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/geometry"
	"github.com/chimie3d/gonomen/iupac"
	"gonum.org/v1/gonum/spatial/r3"
)

// Build returns the structure described by p. Substituents on a carbon that
// has no room left are dropped, keeping the first ones in list order.
// Positions outside the chain are ignored.
func Build(p iupac.ParsedName) *chem.Molecule {
	n := p.ChainLength
	if n < 1 {
		return chem.NewMolecule(0)
	}
	mol := chem.NewMolecule(3*n + 2)
	slots := make([]geometry.Slots, n)
	backbone := geometry.Backbone(n)
	for _, pos := range backbone {
		mol.AddAtom("C", pos)
	}
	for i := 0; i < n-1; i++ {
		mol.MustAddBond(i, i+1, chem.BondOrder(p.BondOrder(i+1)))
		slots[i].TakeToward(r3.Sub(backbone[i+1], backbone[i]))
		slots[i+1].TakeToward(r3.Sub(backbone[i], backbone[i+1]))
	}

	for _, group := range byPosition(p.Substituents) {
		c := group[0].Position - 1
		if c < 0 || c >= n {
			continue
		}
		free := slots[c].Free()
		room := min(len(free), geometry.FreeValence(mol, c))
		ranked := geometry.Rank(mol.Atom(c).Pos(), free, geometry.CarbonCarbon*geometry.BranchScale, mol.Positions(), c)
		for k, s := range group {
			if k >= room {
				break
			}
			attachBranch(mol, c, ranked[k], shape(s))
			slots[c].Take(ranked[k])
		}
	}

	if c := p.Alcohol - 1; p.HasAlcohol() && c < n {
		free := slots[c].Free()
		if len(free) > 0 && geometry.FreeValence(mol, c) > 0 {
			ranked := geometry.Rank(mol.Atom(c).Pos(), free, geometry.CarbonCarbon*geometry.HydroxylScale, mol.Positions(), c)
			geometry.Hydroxyl(mol, c, ranked[0])
			slots[c].Take(ranked[0])
		}
	}

	for i := 0; i < n; i++ {
		geometry.Saturate(mol, i, geometry.FreeValence(mol, i), &slots[i])
	}
	return mol
}

// byPosition groups the substituents by chain position, positions in
// ascending order and substituents in list order within a group.
func byPosition(subs []iupac.Substituent) [][]iupac.Substituent {
	idx := make(map[int]int)
	var groups [][]iupac.Substituent
	for _, s := range subs {
		i, ok := idx[s.Position]
		if !ok {
			i = len(groups)
			idx[s.Position] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	//insertion sort, there are never many groups.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j][0].Position < groups[j-1][0].Position; j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}

// shape returns the parent array of the carbons of a substituent. Unknown
// types are laid out as unbranched chains of BranchLength carbons.
func shape(s iupac.Substituent) []int {
	if a, ok := iupac.LookupAlkyl(s.Type); ok {
		return a.Parents
	}
	l := max(s.BranchLength, 1)
	ret := make([]int, l)
	for i := range ret {
		ret[i] = i - 1
	}
	return ret
}

// attachBranch builds the group described by parents on the atom anchor of mol.
// Its first carbon goes along the tetrahedral direction dir at
// CarbonCarbon*BranchScale; each further carbon goes CarbonCarbon*BranchTailScale
// from its parent, on the best free direction there. Hydrogens are added once
// every carbon of the group is in place, in the order of the carbons.
func attachBranch(mol *chem.Molecule, anchor int, dir int, parents []int) {
	atoms := make([]int, len(parents))
	slots := make([]geometry.Slots, len(parents))
	first := geometry.Along(mol.Atom(anchor).Pos(), geometry.Direction(dir), geometry.CarbonCarbon*geometry.BranchScale)
	atoms[0] = mol.AddAtom("C", first)
	mol.MustAddBond(anchor, atoms[0], chem.Single)
	slots[0].TakeToward(r3.Sub(mol.Atom(anchor).Pos(), first))
	for i := 1; i < len(parents); i++ {
		p := parents[i]
		origin := mol.Atom(atoms[p]).Pos()
		length := geometry.CarbonCarbon * geometry.BranchTailScale
		ranked := geometry.Rank(origin, slots[p].Free(), length, mol.Positions(), atoms[p])
		if len(ranked) == 0 {
			//a carbon with four carbon neighbors, can't happen for the known shapes.
			atoms = atoms[:i]
			break
		}
		pos := geometry.Along(origin, geometry.Direction(ranked[0]), length)
		atoms[i] = mol.AddAtom("C", pos)
		mol.MustAddBond(atoms[p], atoms[i], chem.Single)
		slots[p].Take(ranked[0])
		slots[i].TakeToward(r3.Sub(origin, pos))
	}
	for i, a := range atoms {
		geometry.Saturate(mol, a, geometry.FreeValence(mol, a), &slots[i])
	}
}
