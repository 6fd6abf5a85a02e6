/*
 * graph_test.go, part of gonomen.
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

package chemgraph

import (
	"testing"

	chem "github.com/chimie3d/gonomen"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

// ethanolish returns C-C-O with one hydrogen on the oxygen, plus a stray
// hydrogen when stray is true.
func ethanolish(stray bool) *chem.Molecule {
	mol := chem.NewMolecule(5)
	c1 := mol.AddAtom("C", r3.Vec{})
	c2 := mol.AddAtom("C", r3.Vec{X: 1.54})
	o := mol.AddAtom("O", r3.Vec{X: 2.5})
	h := mol.AddAtom("H", r3.Vec{X: 3.4})
	mol.MustAddBond(c1, c2, chem.Single)
	mol.MustAddBond(c2, o, chem.Single)
	mol.MustAddBond(o, h, chem.Single)
	if stray {
		mol.AddAtom("H", r3.Vec{X: 10})
	}
	return mol
}

func TestConnected(Te *testing.T) {
	assert.True(Te, Connected(ethanolish(false)))
	assert.False(Te, Connected(ethanolish(true)))
	assert.False(Te, Connected(chem.NewMolecule(0)))
	assert.Equal(Te, [][]int{{0, 1, 2, 3}, {4}}, Components(ethanolish(true)))
}

func TestGraph(Te *testing.T) {
	mol := ethanolish(false)
	g := Graph(mol, false)
	assert.Equal(Te, 4, g.Nodes().Len())
	w, ok := g.Weight(0, 1)
	assert.True(Te, ok)
	assert.Equal(Te, 1.0, w)

	heavy := Graph(mol, true)
	assert.Equal(Te, 3, heavy.Nodes().Len())
	assert.Equal(Te, []int{1, 2, 1, 0}, HeavyDegrees(mol))

	carbons, adj := Skeleton(mol)
	assert.Equal(Te, []int{0, 1}, carbons)
	assert.Equal(Te, [][]int{{1}, {0}}, adj)
}
