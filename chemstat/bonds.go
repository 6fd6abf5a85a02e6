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

// Package chemstat summarizes the geometry of a structure: bond lengths
// grouped by the elements they join, and their distribution.
package chemstat

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/chimie3d/gonomen"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BondStat summarizes the lengths, in A, of the bonds of one kind.
type BondStat struct {
	// Pair is the two elements in alphabetical order and the bond order,
	// as in "C-H" or "C=O".
	Pair  string  `json:"pair"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

var orderSymbols = map[chem.BondOrder]string{
	chem.Single:   "-",
	chem.Double:   "=",
	chem.Triple:   "#",
	chem.Aromatic: ":",
}

// Pair returns the label of bond b of mol.
func Pair(mol *chem.Molecule, b chem.Bond) string {
	s1, s2 := mol.Atom(b.A).Symbol, mol.Atom(b.B).Symbol
	if s2 < s1 {
		s1, s2 = s2, s1
	}
	return s1 + orderSymbols[b.Order] + s2
}

// Lengths returns the length of every bond of mol, grouped by Pair.
func Lengths(mol *chem.Molecule) map[string][]float64 {
	ret := make(map[string][]float64)
	for _, b := range mol.Bonds() {
		p := Pair(mol, b)
		ret[p] = append(ret[p], chem.Distance(mol, b.A, b.B))
	}
	return ret
}

// BondStats returns one summary per kind of bond in mol, sorted by Pair.
// The standard deviation of a single bond is 0.
func BondStats(mol *chem.Molecule) []BondStat {
	lengths := Lengths(mol)
	ret := make([]BondStat, 0, len(lengths))
	for p, l := range lengths {
		s := BondStat{Pair: p, Count: len(l), Min: floats.Min(l), Max: floats.Max(l)}
		if len(l) == 1 {
			s.Mean = l[0]
		} else {
			s.Mean, s.Std = stat.MeanStdDev(l, nil)
		}
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Pair < ret[j].Pair })
	return ret
}

// Histogram counts values into the bins given by dividers, which must be
// sorted and have at least two elements. Bin i holds values in
// [dividers[i], dividers[i+1]); values outside the dividers are dropped.
func Histogram(values, dividers []float64) ([]float64, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("chemstat: need at least 2 sorted dividers, got %v", dividers)
	}
	var in []float64
	for _, v := range values {
		if v >= dividers[0] && v < dividers[len(dividers)-1] {
			in = append(in, v)
		}
	}
	sort.Float64s(in)
	counts := make([]float64, len(dividers)-1)
	if len(in) == 0 {
		return counts, nil
	}
	return stat.Histogram(counts, dividers, in, nil), nil
}

// Dividers returns n+1 evenly spaced dividers from min to max, with the
// last one nudged up so that max itself falls in the last bin.
func Dividers(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	d := make([]float64, n+1)
	floats.Span(d, min, max)
	d[n] = math.Nextafter(max, math.Inf(1))
	return d
}
