/*
 * generator.go, part of gonomen.
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
	"fmt"
	"sort"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/builder"
	"github.com/chimie3d/gonomen/chemgraph"
	"github.com/chimie3d/gonomen/iupac"
)

// DefaultMaxSkeletons is the number of raw skeletons generated, before
// duplicates are removed, for one carbon count.
const DefaultMaxSkeletons = 10000

// Skeleton enumeration covers alkanes from MinCarbons to MaxCarbons carbons.
const (
	MinCarbons = 4
	MaxCarbons = 10
)

// Generator finds the isomers of a compound. The zero value uses the
// default limits.
type Generator struct {
	// MaxIsomers is the largest number of records returned.
	MaxIsomers int
	// MaxSkeletons bounds the raw skeletons generated for one alkane.
	MaxSkeletons int
}

// NewGenerator returns a generator with the given limits. Values below 1
// select the defaults.
func NewGenerator(maxIsomers, maxSkeletons int) *Generator {
	return &Generator{MaxIsomers: maxIsomers, MaxSkeletons: maxSkeletons}
}

func (G *Generator) maxIsomers() int {
	if G == nil || G.MaxIsomers < 1 {
		return DefaultMaxIsomers
	}
	return G.MaxIsomers
}

func (G *Generator) maxSkeletons() int {
	if G == nil || G.MaxSkeletons < 1 {
		return DefaultMaxSkeletons
	}
	return G.MaxSkeletons
}

// KindOf returns the kind of isomerism a compound with the name p
// shows by itself: geometric if it carries cis/trans, position if it has
// multiple bonds, chain if it is branched, and single otherwise.
func KindOf(p iupac.ParsedName) Kind {
	switch {
	case p.Isomer != iupac.NoGeometry:
		return Geometric
	case !p.Saturated():
		return Position
	case len(p.Substituents) > 0:
		return Chain
	}
	return Single
}

// GenerateAll returns one record for every alkane with n carbons, at most
// MaxIsomers of them, each named after its longest chain and laid out in 3D
// with all its hydrogens. The unbranched alkane comes first. It returns
// nil if n is outside 1 to MaxCarbons.
func (G *Generator) GenerateAll(n int) []Record {
	if n < 1 || n > MaxCarbons {
		return nil
	}
	raw, _ := Enumerate(n, G.maxSkeletons())
	skeletons, _ := Distinct(raw)
	var ret []Record
	for _, s := range skeletons {
		if len(ret) >= G.maxIsomers() {
			break
		}
		p := s.Name()
		ret = append(ret, Record{
			Name:        iupac.FullName(p),
			Kind:        Chain,
			Description: iupac.Describe(p),
			Structure:   s.Structure(),
		})
	}
	return ret
}

// Count returns the number of different alkanes with n carbons found
// within the raw skeleton limit, not capped by MaxIsomers. The second value
// is false if the limit cut the enumeration, so the count may be short.
func (G *Generator) Count(n int) (int, bool) {
	raw, cut := Enumerate(n, G.maxSkeletons())
	skeletons, _ := Distinct(raw)
	return len(skeletons), !cut
}

// Generate returns the isomers of the compound p, whose structure is mol
// and display name is name. The first record is the compound itself. The
// others come, in order, from:
//
//   - the alkanes with the same number of carbons, for saturated
//     hydrocarbons of MinCarbons to MaxCarbons carbons;
//   - moving the only double (or triple) bond along the first half of the chain;
//   - the cis and trans forms of an interior double bond, or the opposite
//     form if p already names one;
//   - moving the hydroxyl group along the chain;
//   - moving all the substituents of an alcohol together along the first
//     half of the chain;
//   - the ethers with the same number of carbons, for saturated alcohols.
//
// Candidates that are not valid names, give a structure in more than
// one piece, or do not have the formula of the compound are skipped.
// Records are unique by name, and there are at most MaxIsomers. Generate
// returns nil when p itself is not a valid name, or when nothing but the
// compound itself was found.
func (G *Generator) Generate(p iupac.ParsedName, mol *chem.Molecule, name string) *Set {
	if p.Validate() != nil {
		return nil
	}
	if mol == nil {
		mol = builder.Build(p)
	}
	if name == "" {
		name = iupac.FullName(p)
	}
	set := NewSet(chem.Formula(mol), G.maxIsomers())
	set.Add(Record{Name: name, Kind: KindOf(p), Description: iupac.Describe(p), Structure: mol})
	set.Alias(iupac.FullName(p))
	set.Alias(iupac.FullName(orient(p)))

	if c := p.Carbons(); p.Saturated() && !p.HasAlcohol() && !chem.HasHeteroatom(mol) && c >= MinCarbons && c <= MaxCarbons {
		for _, r := range G.GenerateAll(c) {
			set.Add(r)
		}
	}
	G.bondPositions(set, p)
	G.geometric(set, p)
	if p.HasAlcohol() {
		G.alcoholPositions(set, p)
		G.alcoholChains(set, p)
		if p.Saturated() {
			G.ethers(set, p.Carbons())
		}
	}
	if set.Len() <= 1 {
		return nil
	}
	return set
}

// variant builds v and adds it to set under its full name, or under name
// if it is not empty.
func (G *Generator) variant(set *Set, v iupac.ParsedName, kind Kind, name string) {
	if set.Full() || v.Validate() != nil {
		return
	}
	if name == "" {
		v = orient(v)
		name = iupac.FullName(v)
	}
	mol := builder.Build(v)
	if !chemgraph.Connected(mol) || chem.Formula(mol) != set.Formula {
		return
	}
	set.Add(Record{Name: name, Kind: kind, Description: iupac.Describe(v), Structure: mol})
}

func (G *Generator) bondPositions(set *Set, p iupac.ParsedName) {
	n := p.ChainLength
	switch {
	case len(p.DoubleBonds) == 1 && len(p.TripleBonds) == 0:
		for pos := 1; pos <= n/2; pos++ {
			if pos == p.DoubleBonds[0] {
				continue
			}
			v := p.Copy()
			v.DoubleBonds = []int{pos}
			v.Isomer = iupac.NoGeometry
			G.variant(set, v, Position, "")
		}
	case len(p.TripleBonds) == 1 && len(p.DoubleBonds) == 0:
		for pos := 1; pos <= n/2; pos++ {
			if pos == p.TripleBonds[0] {
				continue
			}
			v := p.Copy()
			v.TripleBonds = []int{pos}
			G.variant(set, v, Position, "")
		}
	}
}

func (G *Generator) geometric(set *Set, p iupac.ParsedName) {
	if len(p.DoubleBonds) != 1 || len(p.TripleBonds) != 0 {
		return
	}
	if b := p.DoubleBonds[0]; b <= 1 || b >= p.ChainLength-1 {
		return
	}
	switch p.Isomer {
	case iupac.NoGeometry:
		base := iupac.FullName(p)
		for _, g := range []struct {
			iso    iupac.Geometry
			prefix string
		}{{iupac.Cis, "(Z)-"}, {iupac.Trans, "(E)-"}} {
			v := p.Copy()
			v.Isomer = g.iso
			G.variant(set, v, Geometric, g.prefix+base)
		}
	case iupac.Cis, iupac.Trans:
		v := p.Copy()
		v.Isomer = iupac.Cis
		if p.Isomer == iupac.Cis {
			v.Isomer = iupac.Trans
		}
		G.variant(set, v, Geometric, "")
	}
}

func (G *Generator) alcoholPositions(set *Set, p iupac.ParsedName) {
	for pos := 1; pos <= p.ChainLength; pos++ {
		if pos == p.Alcohol {
			continue
		}
		v := p.Copy()
		v.Alcohol = pos
		G.variant(set, v, Position, "")
	}
}

func (G *Generator) alcoholChains(set *Set, p iupac.ParsedName) {
	n := p.ChainLength
	if len(p.Substituents) == 0 || n < 4 {
		return
	}
	for pos := 2; pos <= n/2+1; pos++ {
		v := p.Copy()
		for i := range v.Substituents {
			v.Substituents[i].Position = pos
		}
		G.variant(set, v, Chain, "")
	}
}

func (G *Generator) ethers(set *Set, carbons int) {
	for r1 := 1; r1 <= carbons/2; r1++ {
		if set.Full() {
			return
		}
		r2 := carbons - r1
		if iupac.AlkylName(r2) == "" {
			continue
		}
		mol := Ether(r1, r2)
		if chem.Formula(mol) != set.Formula {
			continue
		}
		set.Add(Record{
			Name:        EtherName(r1, r2),
			Kind:        Functional,
			Description: fmt.Sprintf("Eter: %s-O-%s", iupac.AlkylName(r1), iupac.AlkylName(r2)),
			Structure:   mol,
		})
	}
}

var defaultGenerator = &Generator{}

// GenerateAll calls GenerateAll on a generator with the default limits.
func GenerateAll(n int) []Record {
	return defaultGenerator.GenerateAll(n)
}

// Generate calls Generate on a generator with the default limits.
func Generate(p iupac.ParsedName, mol *chem.Molecule, name string) *Set {
	return defaultGenerator.Generate(p, mol, name)
}

// orient numbers the chain of p from the end that gives the lowest
// position to the hydroxyl group, then to the multiple bonds, then to the
// substituents.
func orient(p iupac.ParsedName) iupac.ParsedName {
	n := p.ChainLength
	m := p.Copy()
	if m.HasAlcohol() {
		m.Alcohol = n + 1 - p.Alcohol
	}
	for i, s := range m.Substituents {
		m.Substituents[i].Position = n + 1 - s.Position
	}
	for i, b := range m.DoubleBonds {
		m.DoubleBonds[i] = n - b
	}
	for i, b := range m.TripleBonds {
		m.TripleBonds[i] = n - b
	}
	if compareInts(locants(m), locants(p)) < 0 {
		return m
	}
	return p
}

func locants(p iupac.ParsedName) []int {
	c := p.Canonical()
	bonds := append(append([]int{}, c.DoubleBonds...), c.TripleBonds...)
	sort.Ints(bonds)
	ret := append([]int{p.Alcohol}, bonds...)
	return append(ret, sortedPositions(c.Substituents, false)...)
}
