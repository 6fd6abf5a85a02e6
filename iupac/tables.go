/*
 * tables.go, part of gonomen.
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

import "sort"

// chainPrefixes maps the stem of a main chain to its number of carbons.
var chainPrefixes = map[string]int{
	"met":  1,
	"et":   2,
	"prop": 3,
	"but":  4,
	"pent": 5,
	"hex":  6,
	"hept": 7,
	"oct":  8,
	"non":  9,
	"dec":  10,
}

// prefixesByLength holds the keys of chainPrefixes, longest first, so that
// "metan" resolves to met and not to et.
var prefixesByLength = func() []string {
	ret := make([]string, 0, len(chainPrefixes))
	for k := range chainPrefixes {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool {
		if len(ret[i]) != len(ret[j]) {
			return len(ret[i]) > len(ret[j])
		}
		return ret[i] < ret[j]
	})
	return ret
}()

var chainNames = [...]string{"", "met", "et", "prop", "but", "pent", "hex", "hept", "oct", "non", "dec"}

// ChainPrefix returns the stem for a chain of n carbons ("but" for 4), and
// false if n is outside 1..10.
func ChainPrefix(n int) (string, bool) {
	if n < 1 || n >= len(chainNames) {
		return "", false
	}
	return chainNames[n], true
}

// multipliers, longest first so that "tetra" is not read as "tri" plus garbage.
var multipliers = []struct {
	word  string
	count int
}{
	{"hepta", 7},
	{"tetra", 4},
	{"penta", 5},
	{"hexa", 6},
	{"octa", 8},
	{"tri", 3},
	{"di", 2},
}

var multiplierWords = [...]string{"", "", "di", "tri", "tetra", "penta", "hexa", "hepta", "octa"}

// Multiplier returns the prefix for count repetitions of a group ("di" for 2).
// It is empty for 1 and for counts above 8.
func Multiplier(count int) string {
	if count < 0 || count >= len(multiplierWords) {
		return ""
	}
	return multiplierWords[count]
}

// Alkyl describes a substituent group that the builder knows how to lay out.
type Alkyl struct {
	// Key is the normalized name used in ParsedName.
	Key string
	// Display is the name as written in a formatted name.
	Display string
	// Parents is the parent array of the carbons in the group. Carbon 0
	// is the one bonded to the main chain and has parent -1.
	Parents []int
}

// Carbons returns the number of carbons in the group.
func (A Alkyl) Carbons() int {
	return len(A.Parents)
}

var alkyls = []Alkyl{
	{Key: "metil", Display: "metil", Parents: []int{-1}},
	{Key: "etil", Display: "etil", Parents: []int{-1, 0}},
	{Key: "propil", Display: "propil", Parents: []int{-1, 0, 1}},
	{Key: "izopropil", Display: "izopropil", Parents: []int{-1, 0, 0}},
	{Key: "butil", Display: "butil", Parents: []int{-1, 0, 1, 2}},
	{Key: "izobutil", Display: "izobutil", Parents: []int{-1, 0, 1, 1}},
	{Key: "secbutil", Display: "sec-butil", Parents: []int{-1, 0, 0, 2}},
	{Key: "tertbutil", Display: "tert-butil", Parents: []int{-1, 0, 0, 0}},
	{Key: "pentil", Display: "pentil", Parents: []int{-1, 0, 1, 2, 3}},
}

// alkylsByLength holds the alkyl keys, longest first, for prefix matching.
var alkylsByLength = func() []Alkyl {
	ret := make([]Alkyl, len(alkyls))
	copy(ret, alkyls)
	sort.SliceStable(ret, func(i, j int) bool { return len(ret[i].Key) > len(ret[j].Key) })
	return ret
}()

// Alkyls returns the known alkyl groups.
func Alkyls() []Alkyl {
	ret := make([]Alkyl, len(alkyls))
	copy(ret, alkyls)
	return ret
}

// LookupAlkyl returns the alkyl group with the given key.
func LookupAlkyl(key string) (Alkyl, bool) {
	for _, a := range alkyls {
		if a.Key == key {
			return a, true
		}
	}
	return Alkyl{}, false
}

// displayName returns how a substituent type is written in a full name.
func displayName(key string) string {
	if a, ok := LookupAlkyl(key); ok {
		return a.Display
	}
	return key
}

// AlkylName returns the name of the unbranched alkyl group with n carbons,
// from metil to decil ("hexil" for 6). It is empty outside 1..10.
func AlkylName(n int) string {
	p, ok := ChainPrefix(n)
	if !ok {
		return ""
	}
	return p + "il"
}
