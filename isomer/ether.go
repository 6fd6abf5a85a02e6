/*
 * ether.go, part of gonomen.
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

package isomer

import (
	"fmt"
	"math"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/geometry"
	"github.com/chimie3d/gonomen/iupac"
	"gonum.org/v1/gonum/spatial/r3"
)

// EtherName returns the name of the ether with unbranched alkyl groups of
// r1 and r2 carbons: "metil propil eter", or "dietil eter" when both are the
// same. The smaller group goes first.
func EtherName(r1, r2 int) string {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		return "di" + iupac.AlkylName(r1) + " eter"
	}
	return fmt.Sprintf("%s %s eter", iupac.AlkylName(r1), iupac.AlkylName(r2))
}

// Ether builds R1-O-R2 with unbranched groups of r1 and r2 carbons. The
// oxygen sits at the origin, R1 runs toward -x and R2 toward +x in a
// zig-zag. The hydrogens of each carbon are spread evenly on a circle
// in the plane perpendicular to the chain. It returns nil if either group
// is empty.
func Ether(r1, r2 int) *chem.Molecule {
	if r1 < 1 || r2 < 1 {
		return nil
	}
	mol := chem.NewMolecule(3*(r1+r2) + 3)
	o := mol.AddAtom("O", r3.Vec{})
	var carbons []int
	for _, side := range []struct {
		length int
		sign   float64
	}{{r1, -1}, {r2, 1}} {
		prev := o
		for i := 0; i < side.length; i++ {
			bond := geometry.CarbonCarbon
			if i == 0 {
				bond = geometry.CarbonOxygen
			}
			z := geometry.ZigZag
			if i%2 == 1 {
				z = 0
			}
			from := mol.Atom(prev).Pos()
			dz := z - from.Z
			step := math.Sqrt(bond*bond - dz*dz)
			c := mol.AddAtom("C", r3.Vec{X: from.X + side.sign*step, Z: z})
			mol.MustAddBond(prev, c, chem.Single)
			carbons = append(carbons, c)
			prev = c
		}
	}
	for _, c := range carbons {
		k := geometry.FreeValence(mol, c)
		pos := mol.Atom(c).Pos()
		for h := 0; h < k; h++ {
			a := 2*math.Pi/float64(k)*float64(h) + math.Pi/2
			hp := r3.Add(pos, r3.Vec{Y: geometry.CarbonHydrogen * math.Cos(a), Z: geometry.CarbonHydrogen * math.Sin(a)})
			mol.MustAddBond(c, mol.AddAtom("H", hp), chem.Single)
		}
	}
	return mol
}
