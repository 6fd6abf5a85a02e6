/*
 * parser.go, part of gonomen.
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
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnresolvableChainLength is returned, wrapped in a *ParseError, when no
// chain stem can be found in a name.
var ErrUnresolvableChainLength = errors.New("unresolvable chain length")

// ChainLengthMessage is the message shown to users when a name cannot be parsed.
const ChainLengthMessage = `Nu s-a putut determina lungimea lanțului. Exemple valide: "hexan", "but-1-ena", "2,3-dimetil-hexan", "propan-2-ol"`

// ParseError is the error returned by Parse.
type ParseError struct {
	Input string
	deco  []string
}

func (err *ParseError) Error() string {
	return ChainLengthMessage
}

func (err *ParseError) Unwrap() error {
	return ErrUnresolvableChainLength
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *ParseError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

var (
	tripleRe   = regexp.MustCompile(`^(.*?)-(\d+)-ina$`)
	diyneRe    = regexp.MustCompile(`^(.*?)-(\d+(?:,\d+)+)-diina$`)
	dieneRe    = regexp.MustCompile(`^(.*?)-(\d+(?:,\d+)+)-diena$`)
	eneRe      = regexp.MustCompile(`^(.*?)-(\d+)-ena$`)
	bareTriple = regexp.MustCompile(`^([a-z]+?)ina$`)
	bareDouble = regexp.MustCompile(`^([a-z]+?)ena$`)
)

// Parse reads a compound name. The name is normalized first, so case, spaces and
// diacritics do not matter. The only failure is a name without a recognizable
// main chain, reported as a *ParseError that wraps ErrUnresolvableChainLength.
//
// Parse does not call Validate. A name such as "2,2,2-trimetilpropan" or
// "hex-7-ena" is read as written, with positions off the chain or carbons
// with more than four bonds; callers that need a buildable compound should
// check the result with Validate.
func Parse(name string) (ParsedName, error) {
	norm := Normalize(name)
	l := lex(norm)
	p := ParsedName{
		Substituents: l.substituents,
		DoubleBonds:  []int{},
		TripleBonds:  []int{},
		Alcohol:      l.alcohol,
		Isomer:       l.isomer,
	}
	b := l.backbone
	switch {
	case tripleRe.MatchString(b):
		m := tripleRe.FindStringSubmatch(b)
		p.ChainLength = stemLength(m[1], false)
		p.TripleBonds = positions(m[2])
	case diyneRe.MatchString(b):
		m := diyneRe.FindStringSubmatch(b)
		p.ChainLength = stemLength(m[1], false)
		p.TripleBonds = positions(m[2])
	case bareTriple.MatchString(b) && stemLength(bareTriple.FindStringSubmatch(b)[1], false) > 1:
		p.ChainLength = stemLength(bareTriple.FindStringSubmatch(b)[1], false)
		p.TripleBonds = []int{1}
	case dieneRe.MatchString(b):
		m := dieneRe.FindStringSubmatch(b)
		p.ChainLength = stemLength(m[1], false)
		p.DoubleBonds = positions(m[2])
	case eneRe.MatchString(b):
		m := eneRe.FindStringSubmatch(b)
		p.ChainLength = stemLength(m[1], false)
		p.DoubleBonds = positions(m[2])
	case bareDouble.MatchString(b) && stemLength(bareDouble.FindStringSubmatch(b)[1], false) > 1:
		p.ChainLength = stemLength(bareDouble.FindStringSubmatch(b)[1], false)
		p.DoubleBonds = []int{1}
	default:
		p.ChainLength = stemLength(b, true)
	}
	if p.ChainLength == 0 {
		return ParsedName{}, &ParseError{Input: name, deco: []string{"Parse"}}
	}
	return p, nil
}

// MustParse is like Parse but panics on error. For names known at compile time.
func MustParse(name string) ParsedName {
	p, err := Parse(name)
	if err != nil {
		panic(err.Error() + ": " + name)
	}
	return p
}

// stemLength returns the number of carbons of the longest chain stem found in s,
// or 0. With alkane set, the stem must be followed by "an".
func stemLength(s string, alkane bool) int {
	for _, prefix := range prefixesByLength {
		tok := prefix
		if alkane {
			tok += "an"
		}
		if strings.Contains(s, tok) {
			return chainPrefixes[prefix]
		}
	}
	return 0
}

func positions(list string) []int {
	parts := strings.Split(list, ",")
	ret := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			ret = append(ret, n)
		}
	}
	return ret
}
