/*
 * catalog.go, part of gonomen.
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

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/builder"
	"github.com/chimie3d/gonomen/chemgraph"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/chimie3d/gonomen/iupac"
	"gopkg.in/yaml.v3"
)

//go:embed data/compounds.yaml
var compoundsYAML []byte

// Compound is a known compound with its structure.
type Compound struct {
	Key         string
	Name        string
	Aliases     []string
	Description string
	// IUPAC is the name the structure was built from, empty if the
	// structure was given explicitly.
	IUPAC     string
	Structure *chem.Molecule
}

// Formula returns the molecular formula of the compound.
func (C *Compound) Formula() string {
	return chem.Formula(C.Structure)
}

// Catalog is a read-only table of compounds and isomer sets. It is safe
// for concurrent use.
type Catalog struct {
	compounds map[string]*Compound
	keys      []string
	index     map[string]string //normalized key or alias -> key
	isomers   map[string][]isomer.Record
}

// Load reads a catalog in YAML from r. It fails on malformed data, bonds
// to atoms that don't exist, disconnected or overbonded structures,
// names the parser rejects, repeated keys or aliases, and isomer records
// that refer to unknown compounds or don't share a formula.
func Load(r io.Reader) (*Catalog, error) {
	var raw fileSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, Error{"malformed catalog: " + err.Error(), "", []string{"Load"}}
	}
	C := &Catalog{
		compounds: make(map[string]*Compound, len(raw.Compounds)),
		index:     make(map[string]string),
		isomers:   make(map[string][]isomer.Record, len(raw.Isomers)),
	}
	for _, cs := range raw.Compounds {
		if err := C.addCompound(cs); err != nil {
			return nil, errDecorate(err, "Load")
		}
	}
	for _, is := range raw.Isomers {
		if err := C.addIsomers(is); err != nil {
			return nil, errDecorate(err, "Load")
		}
	}
	return C, nil
}

func (C *Catalog) addCompound(cs compoundSpec) error {
	if cs.Key == "" {
		return Error{"compound without a key", "", []string{"addCompound"}}
	}
	if _, ok := C.compounds[cs.Key]; ok {
		return Error{"repeated compound", cs.Key, []string{"addCompound"}}
	}
	mol, err := cs.structure()
	if err != nil {
		return Error{err.Error(), cs.Key, []string{"addCompound"}}
	}
	c := &Compound{
		Key:         cs.Key,
		Name:        cs.Name,
		Aliases:     cs.Aliases,
		Description: cs.Description,
		IUPAC:       cs.IUPAC,
		Structure:   mol,
	}
	for _, name := range append([]string{cs.Key}, cs.Aliases...) {
		n := iupac.Normalize(name)
		if other, ok := C.index[n]; ok {
			return Error{fmt.Sprintf("name %q is already used by %s", name, other), cs.Key, []string{"addCompound"}}
		}
		C.index[n] = cs.Key
	}
	C.compounds[cs.Key] = c
	C.keys = append(C.keys, cs.Key)
	return nil
}

func (C *Catalog) addIsomers(is isomerSetSpec) error {
	if _, ok := C.compounds[is.Key]; !ok {
		return Error{"isomer set for an unknown compound", is.Key, []string{"addIsomers"}}
	}
	if _, ok := C.isomers[is.Key]; ok {
		return Error{"repeated isomer set", is.Key, []string{"addIsomers"}}
	}
	if len(is.Records) == 0 {
		return Error{"empty isomer set", is.Key, []string{"addIsomers"}}
	}
	names := make(map[string]bool)
	var formula string
	recs := make([]isomer.Record, 0, len(is.Records))
	for i, rs := range is.Records {
		if rs.Name == "" || names[rs.Name] {
			return Error{fmt.Sprintf("record %d has an empty or repeated name", i), is.Key, []string{"addIsomers"}}
		}
		names[rs.Name] = true
		rec := isomer.Record{Name: rs.Name, Kind: isomer.Kind(rs.Kind), Description: rs.Description, Ref: rs.Ref}
		switch {
		case rs.Ref != "" && len(rs.Atoms) > 0:
			return Error{fmt.Sprintf("record %q has both a reference and atoms", rs.Name), is.Key, []string{"addIsomers"}}
		case rs.Ref != "":
			c, ok := C.compounds[rs.Ref]
			if !ok {
				return Error{fmt.Sprintf("record %q refers to unknown compound %q", rs.Name, rs.Ref), is.Key, []string{"addIsomers"}}
			}
			rec.Structure = c.Structure
		default:
			mol, err := explicit(rs.Atoms, rs.Bonds)
			if err != nil {
				return Error{fmt.Sprintf("record %q: %s", rs.Name, err), is.Key, []string{"addIsomers"}}
			}
			rec.Structure = mol
		}
		f := chem.Formula(rec.Structure)
		if i == 0 {
			formula = f
		} else if f != formula {
			return Error{fmt.Sprintf("record %q is %s, the set is %s", rs.Name, f, formula), is.Key, []string{"addIsomers"}}
		}
		recs = append(recs, rec)
	}
	C.isomers[is.Key] = recs
	return nil
}

// Lookup returns the compound whose key or one of whose aliases is query,
// ignoring case, diacritics and whitespace.
func (C *Catalog) Lookup(query string) (*Compound, bool) {
	key, ok := C.index[iupac.Normalize(query)]
	if !ok {
		return nil, false
	}
	return C.compounds[key], true
}

// Isomers returns a new set with the static isomers of the compound key,
// or nil and false if the catalog has none. The structures are shared
// with the catalog and must not be modified.
func (C *Catalog) Isomers(key string) (*isomer.Set, bool) {
	recs, ok := C.isomers[key]
	if !ok {
		return nil, false
	}
	set := isomer.NewSet(chem.Formula(recs[0].Structure), len(recs))
	for _, r := range recs {
		set.Add(r)
	}
	return set, true
}

// Keys returns the keys of the compounds, in the order they were loaded.
func (C *Catalog) Keys() []string {
	return append([]string(nil), C.keys...)
}

// Len returns the number of compounds.
func (C *Catalog) Len() int {
	return len(C.keys)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the package. It panics if the
// embedded data is broken.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(compoundsYAML))
		if err != nil {
			panic("catalog: embedded data: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// structure builds the molecule of a compound from whichever source it gives.
func (cs compoundSpec) structure() (*chem.Molecule, error) {
	sources := 0
	if cs.IUPAC != "" {
		sources++
	}
	if len(cs.Ether) > 0 {
		sources++
	}
	if len(cs.Atoms) > 0 {
		sources++
	}
	if sources != 1 {
		return nil, fmt.Errorf("needs exactly one of iupac, ether or atoms, has %d", sources)
	}
	switch {
	case cs.IUPAC != "":
		p, err := iupac.Parse(cs.IUPAC)
		if err != nil {
			return nil, fmt.Errorf("name %q: %w", cs.IUPAC, err)
		}
		return checked(builder.Build(p))
	case len(cs.Ether) > 0:
		if len(cs.Ether) != 2 {
			return nil, fmt.Errorf("an ether needs two groups, has %d", len(cs.Ether))
		}
		mol := isomer.Ether(cs.Ether[0], cs.Ether[1])
		if mol == nil {
			return nil, fmt.Errorf("invalid ether groups %v", cs.Ether)
		}
		return checked(mol)
	}
	return explicit(cs.Atoms, cs.Bonds)
}

func explicit(atoms []atomSpec, bonds []bondSpec) (*chem.Molecule, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no atoms")
	}
	mol := chem.NewMolecule(len(atoms))
	for i, a := range atoms {
		if _, ok := chem.Mass(a.Symbol); !ok {
			return nil, fmt.Errorf("atom %d: unknown element %q", i, a.Symbol)
		}
		mol.AddAtom(a.Symbol, chem.Atom(a).Pos())
	}
	for _, b := range bonds {
		if err := mol.AddBond(b.A, b.B, b.Order); err != nil {
			return nil, err
		}
	}
	return checked(mol)
}

func checked(mol *chem.Molecule) (*chem.Molecule, error) {
	if err := mol.Corrupted(); err != nil {
		return nil, err
	}
	if !chemgraph.Connected(mol) {
		return nil, fmt.Errorf("structure is not connected")
	}
	return mol, nil
}
