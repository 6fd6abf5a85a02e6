/*
 * geometry_test.go, part of gonomen.
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

package geometry

import (
	"math"
	"testing"

	chem "github.com/chimie3d/gonomen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTetrahedral(Te *testing.T) {
	dirs := Tetrahedral()
	for i, d := range dirs {
		assert.InDelta(Te, 1.0, r3.Norm(d), 1e-12)
		for j := i + 1; j < 4; j++ {
			//cos(109.47) = -1/3
			assert.InDelta(Te, -1.0/3, r3.Dot(d, dirs[j]), 1e-12)
		}
	}
}

func TestBackbone(Te *testing.T) {
	pos := Backbone(4)
	require.Len(Te, pos, 4)
	assert.InDelta(Te, -1.5*CarbonCarbon, pos[0].X, 1e-12)
	assert.InDelta(Te, 1.5*CarbonCarbon, pos[3].X, 1e-12)
	assert.Equal(Te, 0.0, pos[0].Z)
	assert.Equal(Te, ZigZag, pos[1].Z)
	assert.Equal(Te, r3.Vec{}, Backbone(1)[0])
}

func TestScoreAndRank(Te *testing.T) {
	placed := []r3.Vec{{}, {X: 1}, {X: 3}}
	assert.InDelta(Te, 1.0, Score(r3.Vec{X: 1}, placed, 2), 1e-12, "skips the parent and zero distances")
	assert.InDelta(Te, 3.0, Score(r3.Vec{X: 1}, placed, -1), 1e-12)

	// a neighbor on +x: directions with negative x must rank first.
	ranked := Rank(r3.Vec{}, []int{0, 1, 2, 3}, 1, []r3.Vec{{}, {X: 1.5}}, 0)
	require.Len(Te, ranked, 4)
	for _, d := range ranked[:2] {
		assert.Less(Te, Direction(d).X, 0.0)
	}
	// no other atoms: every score is 0 and the order is kept.
	assert.Equal(Te, []int{3, 1, 0}, Rank(r3.Vec{}, []int{3, 1, 0}, 1, []r3.Vec{{}}, 0))
}

func TestSlots(Te *testing.T) {
	var s Slots
	assert.Equal(Te, []int{0, 1, 2, 3}, s.Free())
	d := s.TakeToward(r3.Vec{X: 1, Y: 1, Z: 1})
	assert.Equal(Te, 0, d)
	d = s.TakeToward(r3.Vec{X: 1, Y: 1, Z: 1})
	assert.NotEqual(Te, 0, d, "a taken direction is never returned twice")
	s.Take(3)
	s.Take(2)
	assert.Empty(Te, s.Free())
	assert.Equal(Te, -1, s.TakeToward(r3.Vec{X: 1}))
}

func TestSaturateMethane(Te *testing.T) {
	mol := chem.NewMolecule(5)
	c := mol.AddAtom("C", r3.Vec{})
	var s Slots
	hs := Saturate(mol, c, 6, &s)
	assert.Len(Te, hs, 4, "capped by the free valence")
	assert.Equal(Te, "CH₄", chem.Formula(mol))
	for _, h := range hs {
		assert.InDelta(Te, CarbonHydrogen, chem.Distance(mol, c, h), 1e-12)
	}
	assert.Nil(Te, Saturate(mol, c, 1, &s))
	assert.NoError(Te, mol.Corrupted())
}

func TestHydroxyl(Te *testing.T) {
	mol := chem.NewMolecule(3)
	c := mol.AddAtom("C", r3.Vec{})
	o, h := Hydroxyl(mol, c, 2)
	assert.InDelta(Te, CarbonCarbon*HydroxylScale, chem.Distance(mol, c, o), 1e-12)
	assert.InDelta(Te, OxygenHydrogen, chem.Distance(mol, o, h), 1e-12)
	assert.Equal(Te, 3, FreeValence(mol, c))
	assert.Equal(Te, 0, FreeValence(mol, o))
	assert.False(Te, math.IsNaN(mol.Atom(h).X))
}
