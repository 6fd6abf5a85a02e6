/*
 * lexer.go, part of gonomen.
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
	"regexp"
	"strconv"
	"strings"
)

// The lexical pass runs before the backbone is identified. It takes
// the geometric marker off the front, the hydroxyl suffix off the end,
// and the substituent clauses out of the middle, and leaves only
// the text that names the main chain.

var (
	clauseRe     = regexp.MustCompile(`(\d+(?:,\d+)*)-([a-z]+)`)
	alcoholPosRe = regexp.MustCompile(`-(\d+)-ol$`)
)

// mainChainSuffixes end the words that name the main chain rather than a substituent.
var mainChainSuffixes = []string{"an", "ena", "ina", "diena", "ol"}

var geometricPrefixes = []struct {
	prefix string
	geo    Geometry
}{
	{"cis-", Cis},
	{"trans-", Trans},
	{"(z)-", Cis},
	{"(e)-", Trans},
}

// Spellings with an inner hyphen, rewritten to their keys so the clause
// regexp sees one word.
var hyphenated = strings.NewReplacer("tert-butil", "tertbutil", "sec-butil", "secbutil")

// lexed is the result of the lexical pass.
type lexed struct {
	backbone     string
	substituents []Substituent
	alcohol      int
	isomer       Geometry
}

func lex(name string) lexed {
	var l lexed
	s := hyphenated.Replace(name)
	s, l.isomer = stripGeometry(s)
	s, l.alcohol = stripAlcohol(s)
	l.backbone, l.substituents = stripSubstituents(s)
	return l
}

func stripGeometry(s string) (string, Geometry) {
	for _, g := range geometricPrefixes {
		if strings.HasPrefix(s, g.prefix) {
			return s[len(g.prefix):], g.geo
		}
	}
	return s, NoGeometry
}

// stripAlcohol removes "-N-ol", "-ol" or the "ol" of "...anol" and makes the
// remaining text end in "an". The position defaults to 1 when not given.
func stripAlcohol(s string) (string, int) {
	var rest string
	pos := 1
	switch {
	case alcoholPosRe.MatchString(s):
		m := alcoholPosRe.FindStringSubmatchIndex(s)
		pos, _ = strconv.Atoi(s[m[2]:m[3]])
		rest = s[:m[0]]
	case strings.HasSuffix(s, "-ol"):
		rest = strings.TrimSuffix(s, "-ol")
	case strings.HasSuffix(s, "anol"):
		rest = strings.TrimSuffix(s, "ol")
	default:
		return s, 0
	}
	if !strings.HasSuffix(rest, "an") {
		rest += "an"
	}
	return rest, pos
}

// stripSubstituents takes every "<positions>-<multiplier?><group>" clause out of s.
// A clause whose word starts with a known group after the multiplier gives that
// group, and whatever follows the group name stays in the text ("2-metilbutan"
// leaves "butan"). A word ending like a main chain is left untouched. Anything
// else is taken as a substituent of an unknown type.
func stripSubstituents(s string) (string, []Substituent) {
	subs := make([]Substituent, 0, 2)
	var out strings.Builder
	prev := 0
	for _, m := range clauseRe.FindAllStringSubmatchIndex(s, -1) {
		positions := s[m[2]:m[3]]
		word := s[m[4]:m[5]]
		typ, tail, ok := splitClause(word)
		if !ok {
			continue
		}
		for _, p := range strings.Split(positions, ",") {
			pos, err := strconv.Atoi(p)
			if err != nil {
				//only digits reach here, but a huge number may not fit.
				continue
			}
			subs = append(subs, NewSubstituent(pos, typ))
		}
		out.WriteString(s[prev:m[0]])
		out.WriteString(tail)
		prev = m[1]
		if tail == "" && prev < len(s) && s[prev] == '-' {
			prev++
		}
	}
	out.WriteString(s[prev:])
	return strings.TrimLeft(out.String(), "-"), subs
}

// splitClause returns the substituent type of a clause word and the text left
// after it. ok is false when the word is not a substituent.
func splitClause(word string) (typ, tail string, ok bool) {
	rest := word
	for _, m := range multipliers {
		if strings.HasPrefix(word, m.word) {
			rest = word[len(m.word):]
			break
		}
	}
	for _, a := range alkylsByLength {
		if strings.HasPrefix(rest, a.Key) {
			return a.Key, rest[len(a.Key):], true
		}
	}
	for _, suf := range mainChainSuffixes {
		if strings.HasSuffix(word, suf) {
			return "", "", false
		}
	}
	return rest, "", true
}
