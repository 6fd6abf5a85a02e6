/*
 * spec.go, part of gonomen.
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
	"fmt"

	chem "github.com/chimie3d/gonomen"
	"gopkg.in/yaml.v3"
)

type fileSpec struct {
	Compounds []compoundSpec  `yaml:"compounds"`
	Isomers   []isomerSetSpec `yaml:"isomers"`
}

type compoundSpec struct {
	Key         string     `yaml:"key"`
	Name        string     `yaml:"name"`
	Aliases     []string   `yaml:"aliases"`
	Description string     `yaml:"description"`
	IUPAC       string     `yaml:"iupac"`
	Ether       []int      `yaml:"ether"`
	Atoms       []atomSpec `yaml:"atoms"`
	Bonds       []bondSpec `yaml:"bonds"`
}

type isomerSetSpec struct {
	Key     string       `yaml:"key"`
	Records []recordSpec `yaml:"records"`
}

type recordSpec struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"`
	Description string     `yaml:"description"`
	Ref         string     `yaml:"ref"`
	Atoms       []atomSpec `yaml:"atoms"`
	Bonds       []bondSpec `yaml:"bonds"`
}

// atomSpec is written as [element, x, y, z].
type atomSpec chem.Atom

func (a *atomSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 4 {
		return fmt.Errorf("line %d: an atom is [element, x, y, z]", value.Line)
	}
	if err := value.Content[0].Decode(&a.Symbol); err != nil {
		return err
	}
	for i, f := range []*float64{&a.X, &a.Y, &a.Z} {
		if err := value.Content[i+1].Decode(f); err != nil {
			return err
		}
	}
	return nil
}

// bondSpec is written as [a, b] for a single bond or [a, b, order].
type bondSpec struct {
	A, B  int
	Order chem.BondOrder
}

func (b *bondSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) < 2 || len(value.Content) > 3 {
		return fmt.Errorf("line %d: a bond is [a, b] or [a, b, order]", value.Line)
	}
	if err := value.Content[0].Decode(&b.A); err != nil {
		return err
	}
	if err := value.Content[1].Decode(&b.B); err != nil {
		return err
	}
	b.Order = chem.Single
	if len(value.Content) == 3 {
		//BondOrder is a TextUnmarshaler, so the names are accepted.
		return value.Content[2].Decode(&b.Order)
	}
	return nil
}

// Errors

// Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	message string
	key     string //the compound or isomer set with problems, if any.
	deco    []string
}

func (err Error) Error() string {
	if err.key == "" {
		return "catalog error: " + err.message
	}
	return fmt.Sprintf("catalog error in %s: %s", err.key, err.message)
}

// Decorate adds dec to the call trail of the error and returns the trail.
func (E Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// Key returns the compound the error is about, if any.
func (err Error) Key() string { return err.key }

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return err
}
