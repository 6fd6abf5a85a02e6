/*
 * atomicdata.go, part of gonomen.
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

// A map for assigning mass to elements.
// Only the elements that appear in the structures we build or
// keep in the catalog are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"S":  32.06,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.90,
}

// Covalent radii, from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"C":  0.76,
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"S":  1.05,
	"Cl": 1.02,
	"Br": 1.20,
	"I":  1.39,
}

// Maximum bond-order sum (valence) per element.
var symbolMaxBonds = map[string]int{
	"H":  1,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"S":  2,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// Mass returns the atomic mass of the element with the given symbol,
// and false if the symbol is not known.
func Mass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}

// CovalentRadius returns the covalent radius, in A, of the element.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

// MaxValence returns the maximum valence of the element, and false
// if there is no value for it.
func MaxValence(symbol string) (int, bool) {
	v, ok := symbolMaxBonds[symbol]
	return v, ok
}
