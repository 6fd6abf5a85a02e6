/*
 * bonds.go, part of gonomen.
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
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// BondOrder is the order of a covalent bond.
type BondOrder int

const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

var orderNames = map[BondOrder]string{
	Single:   "single",
	Double:   "double",
	Triple:   "triple",
	Aromatic: "aromatic",
}

// Weight is the contribution of a bond of this order to the valence of
// each of its atoms. Aromatic bonds count as 1.5.
func (O BondOrder) Weight() float64 {
	switch O {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic:
		return 1.5
	}
	return 0
}

func (O BondOrder) Valid() bool {
	_, ok := orderNames[O]
	return ok
}

func (O BondOrder) String() string {
	if s, ok := orderNames[O]; ok {
		return s
	}
	return fmt.Sprintf("BondOrder(%d)", int(O))
}

// ParseBondOrder accepts the names used by String, case-insensitive.
func ParseBondOrder(s string) (BondOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range orderNames {
		if v == s {
			return k, nil
		}
	}
	return 0, newError("ParseBondOrder", "unknown bond order %q", s)
}

func (O BondOrder) MarshalText() ([]byte, error) {
	if !O.Valid() {
		return nil, newError("BondOrder.MarshalText", "invalid bond order %d", int(O))
	}
	return []byte(O.String()), nil
}

func (O *BondOrder) UnmarshalText(text []byte) error {
	o, err := ParseBondOrder(string(text))
	if err != nil {
		return errDecorate(err, "BondOrder.UnmarshalText")
	}
	*O = o
	return nil
}

// Bond joins the atoms with indexes A and B in a Molecule.
type Bond struct {
	A     int       `json:"a"`
	B     int       `json:"b"`
	Order BondOrder `json:"order"`
}

// Cross returns the index of the atom at the other end of the bond from
// origin. It panics if origin is not part of the bond.
func (B Bond) Cross(origin int) int {
	if origin == B.A {
		return B.B
	}
	if origin == B.B {
		return B.A
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

// Has returns true if the atom with index i is one of the ends of the bond.
func (B Bond) Has(i int) bool {
	return B.A == i || B.B == i
}

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// AssignBonds adds single bonds to mol based on a simple distance
// criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
// Bonds already present are kept, and no pair is bonded twice. When an atom
// ends up with more bonds than its valence allows, the longest ones are dropped.
func AssignBonds(mol *Molecule) error {
	type cand struct {
		a, b int
		d    float64
	}
	bonded := make(map[[2]int]bool, len(mol.bonds))
	for _, b := range mol.bonds {
		bonded[[2]int{min(b.A, b.B), max(b.A, b.B)}] = true
	}
	tot := mol.Len()
	cands := make([]cand, 0, tot)
	for i := 0; i < tot; i++ {
		cov1, ok := symbolCovrad[mol.atoms[i].Symbol]
		if !ok {
			return newError("AssignBonds", "couldn't find the covalent radius for %s %d", mol.atoms[i].Symbol, i)
		}
		for j := i + 1; j < tot; j++ {
			cov2, ok := symbolCovrad[mol.atoms[j].Symbol]
			if !ok {
				return newError("AssignBonds", "couldn't find the covalent radius for %s %d", mol.atoms[j].Symbol, j)
			}
			if bonded[[2]int{i, j}] {
				continue
			}
			d := r3.Norm(r3.Sub(mol.atoms[i].Pos(), mol.atoms[j].Pos()))
			if d < cov1+cov2+bondtol && d > tooclose {
				cands = append(cands, cand{i, j, d})
			}
		}
	}
	//shortest first, so the valence limit drops the longest.
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	for _, c := range cands {
		if !room(mol, c.a) || !room(mol, c.b) {
			continue
		}
		if err := mol.AddBond(c.a, c.b, Single); err != nil {
			return errDecorate(err, "AssignBonds")
		}
	}
	return nil
}

func room(mol *Molecule, i int) bool {
	max, ok := symbolMaxBonds[mol.atoms[i].Symbol]
	if !ok {
		return true
	}
	return mol.Valence(i)+1 <= float64(max)
}
