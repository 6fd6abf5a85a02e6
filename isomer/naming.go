/*
 * naming.go, part of gonomen.
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
	"sort"

	"github.com/chimie3d/gonomen/iupac"
)

// alkylForms maps the canonical form of each known alkyl group, rooted at
// the carbon bonded to the chain, to its key.
var alkylForms = func() map[string]string {
	ret := make(map[string]string)
	for _, a := range iupac.Alkyls() {
		form := Skeleton(a.Parents).Canonical()
		if _, ok := ret[form]; !ok {
			ret[form] = a.Key
		}
	}
	return ret
}()

// Name describes the skeleton as a main chain, its longest path, with the
// rest of the tree as alkyl substituents. The chain is numbered from the
// end that gives the substituents the lowest positions. Branches with a
// shape that is not a known alkyl group are named as unbranched ones with
// the same number of carbons.
func (S Skeleton) Name() iupac.ParsedName {
	p := iupac.ParsedName{
		Substituents: []iupac.Substituent{},
		DoubleBonds:  []int{},
		TripleBonds:  []int{},
	}
	path := S.LongestPath()
	n := len(path)
	p.ChainLength = n
	if n == 0 {
		return p
	}
	adj := adjacency(S.Graph())
	onPath := make(map[int]bool, n)
	for _, c := range path {
		onPath[c] = true
	}
	var forward []iupac.Substituent
	for i, c := range path {
		for _, b := range adj[c] {
			if onPath[b] {
				continue
			}
			size := subtreeSize(adj, b, c)
			typ, ok := alkylForms[canonical(adj, b, c)]
			if !ok {
				typ = iupac.AlkylName(size)
			}
			forward = append(forward, iupac.Substituent{Position: i + 1, Type: typ, BranchLength: size})
		}
	}
	backward := make([]iupac.Substituent, len(forward))
	for i, s := range forward {
		s.Position = n + 1 - s.Position
		backward[i] = s
	}
	p.Substituents = forward
	if lowerLocants(backward, forward) {
		p.Substituents = backward
	}
	return p
}

func subtreeSize(adj [][]int, node, from int) int {
	ret := 1
	for _, n := range adj[node] {
		if n != from {
			ret += subtreeSize(adj, n, node)
		}
	}
	return ret
}

// lowerLocants returns true if the positions of a are lower than those of b
// at the first point of difference. On a tie the positions are compared in
// the alphabetical order of the groups, as they are written in the name.
func lowerLocants(a, b []iupac.Substituent) bool {
	if c := compareInts(sortedPositions(a, false), sortedPositions(b, false)); c != 0 {
		return c < 0
	}
	return compareInts(sortedPositions(a, true), sortedPositions(b, true)) < 0
}

func sortedPositions(subs []iupac.Substituent, byType bool) []int {
	s := append([]iupac.Substituent{}, subs...)
	sort.SliceStable(s, func(i, j int) bool {
		if byType && s[i].Type != s[j].Type {
			return s[i].Type < s[j].Type
		}
		return s[i].Position < s[j].Position
	})
	ret := make([]int, len(s))
	for i, v := range s {
		ret[i] = v.Position
	}
	return ret
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}
