/*
 * chem.go, part of gonomen.
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
	v3 "github.com/chimie3d/gonomen/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: Accessors here panic instead of returning errors when given an out of range index.
 * If that happens, the program is most likely wrong and should crash. Bonds coming from
 * outside the package (files, the catalog) go through AddBond, which returns an error.**/

// Atom contains the element and the cartesian coordinates, in A, of an atom.
type Atom struct {
	Symbol string  `json:"element"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

// NewAtom returns an atom of the given element at pos.
func NewAtom(symbol string, pos r3.Vec) Atom {
	return Atom{Symbol: symbol, X: pos.X, Y: pos.Y, Z: pos.Z}
}

// Pos returns the position of the atom as a vector.
func (A Atom) Pos() r3.Vec {
	return r3.Vec{X: A.X, Y: A.Y, Z: A.Z}
}

// Molecule is a set of atoms joined by bonds. Every bond refers to atoms
// present in the molecule; AddBond enforces it.
type Molecule struct {
	atoms []Atom
	bonds []Bond
}

// NewMolecule returns an empty molecule with room for n atoms.
func NewMolecule(n int) *Molecule {
	return &Molecule{atoms: make([]Atom, 0, n), bonds: make([]Bond, 0, n)}
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

// Atom returns the ith atom. It panics if i is out of range.
func (M *Molecule) Atom(i int) Atom {
	return M.atoms[i]
}

// Bonds returns the bonds of the molecule. The slice must not be modified.
func (M *Molecule) Bonds() []Bond {
	return M.bonds
}

// AddAtom appends an atom of the given element at pos and returns its index.
func (M *Molecule) AddAtom(symbol string, pos r3.Vec) int {
	M.atoms = append(M.atoms, NewAtom(symbol, pos))
	return len(M.atoms) - 1
}

// AddBond joins the atoms a and b with a bond of the given order.
// It returns an error if either index is out of range, if a==b, or if the
// order is not valid.
func (M *Molecule) AddBond(a, b int, order BondOrder) error {
	n := len(M.atoms)
	if a < 0 || b < 0 || a >= n || b >= n {
		return newError("AddBond", "bond %d-%d references an atom out of range (%d atoms)", a, b, n)
	}
	if a == b {
		return newError("AddBond", "atom %d cannot be bonded to itself", a)
	}
	if !order.Valid() {
		return newError("AddBond", "invalid order %d for bond %d-%d", int(order), a, b)
	}
	M.bonds = append(M.bonds, Bond{A: a, B: b, Order: order})
	return nil
}

// MustAddBond is like AddBond, but panics on error.
func (M *Molecule) MustAddBond(a, b int, order BondOrder) {
	if err := M.AddBond(a, b, order); err != nil {
		panic(err.Error())
	}
}

// SetPos moves the ith atom to pos.
func (M *Molecule) SetPos(i int, pos r3.Vec) {
	M.atoms[i].X, M.atoms[i].Y, M.atoms[i].Z = pos.X, pos.Y, pos.Z
}

// Positions returns the positions of all atoms, in order.
func (M *Molecule) Positions() []r3.Vec {
	ret := make([]r3.Vec, len(M.atoms))
	for i, a := range M.atoms {
		ret[i] = a.Pos()
	}
	return ret
}

// Valence returns the sum of the weights of the bonds the ith atom takes part in.
func (M *Molecule) Valence(i int) float64 {
	var v float64
	for _, b := range M.bonds {
		if b.Has(i) {
			v += b.Order.Weight()
		}
	}
	return v
}

// Neighbors returns the indexes of the atoms bonded to the ith atom, in the
// order in which the bonds were added.
func (M *Molecule) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	for _, b := range M.bonds {
		if b.Has(i) {
			ret = append(ret, b.Cross(i))
		}
	}
	return ret
}

// Count returns the number of atoms of the given element.
func (M *Molecule) Count(symbol string) int {
	c := 0
	for _, a := range M.atoms {
		if a.Symbol == symbol {
			c++
		}
	}
	return c
}

// Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	r := &Molecule{atoms: make([]Atom, len(M.atoms)), bonds: make([]Bond, len(M.bonds))}
	copy(r.atoms, M.atoms)
	copy(r.bonds, M.bonds)
	return r
}

// Coords returns a new matrix with the coordinates of the atoms, one per row.
func (M *Molecule) Coords() *v3.Matrix {
	c := v3.Zeros(len(M.atoms))
	for i, a := range M.atoms {
		c.SetVec(i, a.Pos())
	}
	return c
}

// SetCoords replaces the positions of all atoms with the rows of c.
func (M *Molecule) SetCoords(c *v3.Matrix) error {
	if c.NVecs() != len(M.atoms) {
		return newError("SetCoords", "%d coordinates for %d atoms", c.NVecs(), len(M.atoms))
	}
	for i := range M.atoms {
		M.SetPos(i, c.Vec(i))
	}
	return nil
}

// Corrupted checks the bonds and the valences of the molecule and returns
// an error describing the first problem found, or nil. Atoms of elements
// without a known maximum valence are not checked.
func (M *Molecule) Corrupted() error {
	n := len(M.atoms)
	for i, b := range M.bonds {
		if b.A < 0 || b.B < 0 || b.A >= n || b.B >= n || b.A == b.B {
			return newError("Corrupted", "bond %d (%d-%d) is invalid for %d atoms", i, b.A, b.B, n)
		}
		if !b.Order.Valid() {
			return newError("Corrupted", "bond %d has invalid order %d", i, int(b.Order))
		}
	}
	for i, a := range M.atoms {
		max, ok := symbolMaxBonds[a.Symbol]
		if !ok {
			continue
		}
		if v := M.Valence(i); v > float64(max)+1e-6 {
			return newError("Corrupted", "atom %d (%s) has valence %.1f, maximum is %d", i, a.Symbol, v, max)
		}
	}
	return nil
}
