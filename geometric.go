/*
 * geometric.go, part of gonomen.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// MassCenter returns the center of mass of mol. Atoms of elements without
// a known mass weigh 1. An empty molecule has its center at the origin.
func MassCenter(mol *Molecule) r3.Vec {
	n := mol.Len()
	if n == 0 {
		return r3.Vec{}
	}
	mass := make([]float64, n)
	for i := range mass {
		m, ok := symbolMass[mol.atoms[i].Symbol]
		if !ok {
			m = 1
		}
		mass[i] = m
	}
	total := floats.Sum(mass)
	floats.Scale(1/total, mass)
	w := mat.NewVecDense(n, mass)
	coords := mol.Coords()
	var c mat.VecDense
	c.MulVec(coords.Dense.T(), w)
	return r3.Vec{X: c.AtVec(0), Y: c.AtVec(1), Z: c.AtVec(2)}
}

// Centroid returns the geometric center of mol.
func Centroid(mol *Molecule) r3.Vec {
	if mol.Len() == 0 {
		return r3.Vec{}
	}
	return mol.Coords().Centroid()
}

// MassCentrate translates mol so that its center of mass is at the origin, and
// returns the displacement applied.
func MassCentrate(mol *Molecule) r3.Vec {
	disp := r3.Scale(-1, MassCenter(mol))
	Translate(mol, disp)
	return disp
}

// Translate moves every atom of mol by disp.
func Translate(mol *Molecule, disp r3.Vec) {
	c := mol.Coords()
	c.Translate(disp)
	//can't fail, same number of atoms.
	_ = mol.SetCoords(c)
}

// Distance returns the distance between the atoms i and j of mol.
func Distance(mol *Molecule, i, j int) float64 {
	return r3.Norm(r3.Sub(mol.atoms[i].Pos(), mol.atoms[j].Pos()))
}
