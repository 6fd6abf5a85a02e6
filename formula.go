/*
 * formula.go, part of gonomen.
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
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Elements that lead the formula, in this order. Anything else
// follows in alphabetical order.
var formulaOrder = []string{"C", "H", "O", "N"}

var subscripts = strings.NewReplacer(
	"0", "₀", "1", "₁", "2", "₂", "3", "₃", "4", "₄",
	"5", "₅", "6", "₆", "7", "₇", "8", "₈", "9", "₉",
)

// Composition returns the number of atoms of each element in mol.
func Composition(mol Atomer) map[string]int {
	ret := make(map[string]int)
	for i := 0; i < mol.Len(); i++ {
		ret[mol.Atom(i).Symbol]++
	}
	return ret
}

// Formula returns the molecular formula of mol, carbon first, then hydrogen,
// oxygen and nitrogen, with counts as Unicode subscripts. A count of 1 is
// omitted, absent elements do not appear.
func Formula(mol Atomer) string {
	comp := Composition(mol)
	var b strings.Builder
	write := func(sym string) {
		n := comp[sym]
		if n == 0 {
			return
		}
		b.WriteString(sym)
		if n > 1 {
			b.WriteString(subscripts.Replace(strconv.Itoa(n)))
		}
		delete(comp, sym)
	}
	for _, s := range formulaOrder {
		write(s)
	}
	rest := make([]string, 0, len(comp))
	for s := range comp {
		rest = append(rest, s)
	}
	sort.Strings(rest)
	for _, s := range rest {
		write(s)
	}
	return b.String()
}

// MolarMass returns the molar mass of mol in g/mol. It fails if an element
// has no known mass.
func MolarMass(mol Atomer) (float64, error) {
	masses := make([]float64, mol.Len())
	for i := range masses {
		sym := mol.Atom(i).Symbol
		m, ok := symbolMass[sym]
		if !ok {
			return 0, newError("MolarMass", "no mass known for element %q (atom %d)", sym, i)
		}
		masses[i] = m
	}
	return floats.Sum(masses), nil
}
