/*
 * json.go, part of gonomen.
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
	"encoding/json"
	"io"
)

// jsonMolecule is the wire form of a Molecule.
type jsonMolecule struct {
	Formula string `json:"formula,omitempty"`
	Atoms   []Atom `json:"atoms"`
	Bonds   []Bond `json:"bonds"`
}

// MarshalJSON encodes the molecule as {"formula", "atoms", "bonds"}.
func (M *Molecule) MarshalJSON() ([]byte, error) {
	jm := jsonMolecule{Formula: Formula(M), Atoms: M.atoms, Bonds: M.bonds}
	if jm.Atoms == nil {
		jm.Atoms = []Atom{}
	}
	if jm.Bonds == nil {
		jm.Bonds = []Bond{}
	}
	return json.Marshal(jm)
}

// UnmarshalJSON decodes a molecule, rejecting bonds that refer to atoms
// not present. The formula field, if present, is ignored.
func (M *Molecule) UnmarshalJSON(data []byte) error {
	var jm jsonMolecule
	if err := json.Unmarshal(data, &jm); err != nil {
		return errDecorate(err, "Molecule.UnmarshalJSON")
	}
	mol := NewMolecule(len(jm.Atoms))
	mol.atoms = append(mol.atoms, jm.Atoms...)
	for _, b := range jm.Bonds {
		if err := mol.AddBond(b.A, b.B, b.Order); err != nil {
			return errDecorate(err, "Molecule.UnmarshalJSON")
		}
	}
	*M = *mol
	return nil
}

// JSONWrite sends mol to out as one line of JSON.
func JSONWrite(out io.Writer, mol *Molecule) error {
	enc := json.NewEncoder(out)
	return errDecorate(enc.Encode(mol), "JSONWrite")
}
