/*
 * name.go, part of gonomen.
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

package iupac

import (
	"fmt"
	"sort"
)

// Geometry is the cis/trans marker of a name.
type Geometry string

const (
	NoGeometry Geometry = ""
	Cis        Geometry = "cis"
	Trans      Geometry = "trans"
)

// Substituent is an alkyl group on the main chain.
type Substituent struct {
	// Position is the 1-based chain carbon the group hangs from.
	Position int `json:"position"`
	// Type is the normalized group name, e.g. "metil" or "tertbutil".
	Type string `json:"type"`
	// BranchLength is the number of carbons in the group.
	BranchLength int `json:"branchLength"`
}

// ParsedName is the structured form of a compound name.
// Positions are 1-based along the main chain. A bond position p joins
// the carbons p and p+1. Alcohol is 0 when there is no hydroxyl group.
type ParsedName struct {
	ChainLength  int           `json:"chainLength"`
	Substituents []Substituent `json:"substituents"`
	DoubleBonds  []int         `json:"doubleBonds"`
	TripleBonds  []int         `json:"tripleBonds"`
	Alcohol      int           `json:"alcohol,omitempty"`
	Isomer       Geometry      `json:"isomer,omitempty"`
}

// NewSubstituent returns a substituent of the given type at pos, with the
// branch length of the known alkyl group, or 1 for unknown types.
func NewSubstituent(pos int, typ string) Substituent {
	l := 1
	if a, ok := LookupAlkyl(typ); ok {
		l = a.Carbons()
	}
	return Substituent{Position: pos, Type: typ, BranchLength: l}
}

// Copy returns a deep copy of p.
func (p ParsedName) Copy() ParsedName {
	r := p
	r.Substituents = append([]Substituent{}, p.Substituents...)
	r.DoubleBonds = append([]int{}, p.DoubleBonds...)
	r.TripleBonds = append([]int{}, p.TripleBonds...)
	return r
}

// Saturated returns true if p has neither double nor triple bonds.
func (p ParsedName) Saturated() bool {
	return len(p.DoubleBonds) == 0 && len(p.TripleBonds) == 0
}

// HasAlcohol returns true if p has a hydroxyl group.
func (p ParsedName) HasAlcohol() bool {
	return p.Alcohol > 0
}

// Carbons returns the total number of carbons: main chain plus substituents.
func (p ParsedName) Carbons() int {
	n := p.ChainLength
	for _, s := range p.Substituents {
		n += s.BranchLength
	}
	return n
}

// BondOrder returns the order of the chain bond at position pos: 3 if listed
// as triple, 2 if listed as double, 1 otherwise.
func (p ParsedName) BondOrder(pos int) int {
	if contains(p.TripleBonds, pos) {
		return 3
	}
	if contains(p.DoubleBonds, pos) {
		return 2
	}
	return 1
}

// Validate checks that every position is on the chain, that no bond is both
// double and triple, and that no chain carbon ends up with more than four
// bonds. It does not check the substituent types.
func (p ParsedName) Validate() error {
	n := p.ChainLength
	if n < 1 {
		return fmt.Errorf("iupac: chain length %d", n)
	}
	for _, s := range p.Substituents {
		if s.Position < 1 || s.Position > n {
			return fmt.Errorf("iupac: substituent %s at %d on a chain of %d", s.Type, s.Position, n)
		}
		if s.BranchLength < 1 {
			return fmt.Errorf("iupac: substituent %s with %d carbons", s.Type, s.BranchLength)
		}
	}
	for _, set := range [][]int{p.DoubleBonds, p.TripleBonds} {
		for _, b := range set {
			if b < 1 || b >= n {
				return fmt.Errorf("iupac: bond position %d on a chain of %d", b, n)
			}
		}
	}
	for _, b := range p.DoubleBonds {
		if contains(p.TripleBonds, b) {
			return fmt.Errorf("iupac: bond %d is both double and triple", b)
		}
	}
	if p.Alcohol < 0 || p.Alcohol > n {
		return fmt.Errorf("iupac: hydroxyl at %d on a chain of %d", p.Alcohol, n)
	}
	for c := 1; c <= n; c++ {
		if v := p.valence(c); v > 4 {
			return fmt.Errorf("iupac: carbon %d would have %d bonds", c, v)
		}
	}
	return nil
}

// valence is the number of bonds, counted by order, on chain carbon c
// before hydrogens are added.
func (p ParsedName) valence(c int) int {
	v := 0
	if c > 1 {
		v += p.BondOrder(c - 1)
	}
	if c < p.ChainLength {
		v += p.BondOrder(c)
	}
	for _, s := range p.Substituents {
		if s.Position == c {
			v++
		}
	}
	if p.Alcohol == c {
		v++
	}
	return v
}

// Canonical returns a copy of p with the substituents sorted by type and
// position and the bond positions sorted, the order FullName writes them.
func (p ParsedName) Canonical() ParsedName {
	r := p.Copy()
	sort.SliceStable(r.Substituents, func(i, j int) bool {
		a, b := r.Substituents[i], r.Substituents[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Position < b.Position
	})
	sort.Ints(r.DoubleBonds)
	sort.Ints(r.TripleBonds)
	return r
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
