/*
 * format.go, part of gonomen.
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
	"strconv"
	"strings"
)

// FullName writes p as a name: the cis/trans marker, the substituent groups in
// alphabetical order of type ("2,3-dimetil"), then the main chain ("hexan",
// "but-1-enă", "but-1,3-dienă", "but-2-ină", "propan-2-ol"). Parse reads the
// result back into p.
func FullName(p ParsedName) string {
	var b strings.Builder
	if p.Isomer != NoGeometry {
		b.WriteString(string(p.Isomer))
		b.WriteString("-")
	}
	groups := make(map[string][]int)
	for _, s := range p.Substituents {
		groups[s.Type] = append(groups[s.Type], s.Position)
	}
	types := make([]string, 0, len(groups))
	for t := range groups {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		pos := groups[t]
		sort.Ints(pos)
		b.WriteString(joinInts(pos))
		b.WriteString("-")
		b.WriteString(Multiplier(len(pos)))
		b.WriteString(displayName(t))
		b.WriteString("-")
	}
	b.WriteString(mainChain(p))
	return b.String()
}

func mainChain(p ParsedName) string {
	prefix, ok := ChainPrefix(p.ChainLength)
	if !ok {
		prefix = fmt.Sprintf("C%d", p.ChainLength)
	}
	switch {
	case p.HasAlcohol():
		return fmt.Sprintf("%san-%d-ol", prefix, p.Alcohol)
	case len(p.DoubleBonds) > 0:
		return unsaturated(prefix, p.DoubleBonds, "enă")
	case len(p.TripleBonds) > 0:
		return unsaturated(prefix, p.TripleBonds, "ină")
	}
	return prefix + "an"
}

func unsaturated(prefix string, bonds []int, suffix string) string {
	pos := append([]int{}, bonds...)
	sort.Ints(pos)
	return fmt.Sprintf("%s-%s-%s%s", prefix, joinInts(pos), Multiplier(len(pos)), suffix)
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}

// Describe returns a few lines, in Romanian, describing the main chain,
// the functional groups and the substituents of p.
func Describe(p ParsedName) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lanț principal: %d atomi de carbon", p.ChainLength)
	if p.HasAlcohol() {
		fmt.Fprintf(&b, "\nGrupa hidroxil (-OH) la poziția: %d", p.Alcohol)
	}
	if len(p.DoubleBonds) > 0 {
		fmt.Fprintf(&b, "\nLegături duble la poziția: %s", strings.ReplaceAll(joinInts(p.DoubleBonds), ",", ", "))
	}
	if len(p.TripleBonds) > 0 {
		fmt.Fprintf(&b, "\nLegături triple la poziția: %s", strings.ReplaceAll(joinInts(p.TripleBonds), ",", ", "))
	}
	if len(p.Substituents) > 0 {
		subs := make([]string, len(p.Substituents))
		for i, s := range p.Substituents {
			subs[i] = fmt.Sprintf("%s la C-%d", displayName(s.Type), s.Position)
		}
		fmt.Fprintf(&b, "\nSubstituenți: %s", strings.Join(subs, ", "))
	}
	if p.Isomer != NoGeometry {
		fmt.Fprintf(&b, "\nIzomer %s", p.Isomer)
	}
	return b.String()
}
