/*
 * chem_test.go, part of gonomen.
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

package chem

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// water returns a water molecule with its two O-H bonds.
func water() *Molecule {
	mol := NewMolecule(3)
	o := mol.AddAtom("O", r3.Vec{})
	h1 := mol.AddAtom("H", r3.Vec{X: 0.757, Y: 0.586})
	h2 := mol.AddAtom("H", r3.Vec{X: -0.757, Y: 0.586})
	mol.MustAddBond(o, h1, Single)
	mol.MustAddBond(o, h2, Single)
	return mol
}

func TestAddBond(Te *testing.T) {
	mol := water()
	tests := []struct {
		name  string
		a, b  int
		order BondOrder
	}{
		{"out of range", 0, 3, Single},
		{"negative", -1, 0, Single},
		{"self", 1, 1, Single},
		{"bad order", 1, 2, BondOrder(9)},
	}
	for _, tt := range tests {
		Te.Run(tt.name, func(t *testing.T) {
			err := mol.AddBond(tt.a, tt.b, tt.order)
			require.Error(t, err)
			var cerr Error
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, []string{"AddBond"}, cerr.Decorate(""))
		})
	}
	assert.Len(Te, mol.Bonds(), 2)
	assert.Panics(Te, func() { mol.MustAddBond(0, 7, Single) })
	assert.NoError(Te, mol.Corrupted())
}

func TestValenceAndNeighbors(Te *testing.T) {
	mol := NewMolecule(3)
	c1 := mol.AddAtom("C", r3.Vec{})
	c2 := mol.AddAtom("C", r3.Vec{X: 1.34})
	o := mol.AddAtom("O", r3.Vec{X: 2.5})
	mol.MustAddBond(c1, c2, Double)
	mol.MustAddBond(c2, o, Single)
	assert.Equal(Te, 2.0, mol.Valence(c1))
	assert.Equal(Te, 3.0, mol.Valence(c2))
	assert.Equal(Te, []int{c1, o}, mol.Neighbors(c2))
	assert.NoError(Te, mol.Corrupted())

	mol.MustAddBond(c2, o, Double)
	assert.Error(Te, mol.Corrupted(), "carbon with 5 bonds and oxygen with 3")
}

func TestFormula(Te *testing.T) {
	assert.Equal(Te, "H₂O", Formula(water()))

	mol := NewMolecule(0)
	assert.Equal(Te, "", Formula(mol))
	for i := 0; i < 12; i++ {
		mol.AddAtom("H", r3.Vec{})
	}
	mol.AddAtom("N", r3.Vec{})
	for i := 0; i < 5; i++ {
		mol.AddAtom("C", r3.Vec{})
	}
	mol.AddAtom("O", r3.Vec{})
	mol.AddAtom("Cl", r3.Vec{})
	assert.Equal(Te, "C₅H₁₂ONCl", Formula(mol))

	m, err := MolarMass(water())
	require.NoError(Te, err)
	assert.InDelta(Te, 18.015, m, 1e-3)

	mol.AddAtom("Xx", r3.Vec{})
	_, err = MolarMass(mol)
	assert.Error(Te, err)
}

func TestXYZRoundTrip(Te *testing.T) {
	mol := water()
	var buf bytes.Buffer
	require.NoError(Te, XYZWrite(&buf, mol.Coords(), mol, "water\nsecond line"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(Te, lines, 5)
	assert.Equal(Te, "3", lines[0])
	assert.Equal(Te, "water second line", lines[1])

	read, comment, err := XYZRead(&buf)
	require.NoError(Te, err)
	assert.Equal(Te, "water second line", comment)
	require.Equal(Te, 3, read.Len())
	assert.Equal(Te, "H", read.Atom(2).Symbol)
	assert.InDelta(Te, -0.757, read.Atom(2).X, 1e-4)
	assert.Empty(Te, read.Bonds())

	require.NoError(Te, AssignBonds(read))
	assert.Len(Te, read.Bonds(), 2)
	assert.Equal(Te, 2.0, read.Valence(0))

	_, _, err = XYZRead(strings.NewReader("2\n\nC 0 0 0\n"))
	assert.Error(Te, err)
}

func TestJSON(Te *testing.T) {
	data, err := json.Marshal(water())
	require.NoError(Te, err)
	assert.Contains(Te, string(data), `"formula":"H₂O"`)
	assert.Contains(Te, string(data), `"order":"single"`)

	var back Molecule
	require.NoError(Te, json.Unmarshal(data, &back))
	assert.Equal(Te, 3, back.Len())
	assert.Len(Te, back.Bonds(), 2)

	bad := `{"atoms":[{"element":"C","x":0,"y":0,"z":0}],"bonds":[{"a":0,"b":1,"order":"single"}]}`
	assert.Error(Te, json.Unmarshal([]byte(bad), &back))
}

func TestMassCentrate(Te *testing.T) {
	mol := water()
	MassCentrate(mol)
	c := MassCenter(mol)
	assert.InDelta(Te, 0.0, r3.Norm(c), 1e-9)
	assert.InDelta(Te, 0.9573, Distance(mol, 0, 1), 1e-3)
	assert.Equal(Te, r3.Vec{}, Centroid(NewMolecule(0)))
}
