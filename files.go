/*
 * files.go, part of gonomen.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/chimie3d/gonomen/v3"
)

// DefaultXYZPrecision is the number of decimals written for each coordinate.
const DefaultXYZPrecision = 4

// XYZWrite writes the atoms of mol with the coordinates in coords as one XYZ frame.
// comment goes in the second line, and must not contain a newline. The optional precision
// is the number of decimals for the coordinates.
func XYZWrite(out io.Writer, coords *v3.Matrix, mol Atomer, comment string, precision ...int) error {
	if coords.NVecs() != mol.Len() {
		return newError("XYZWrite", "%d coordinates for %d atoms", coords.NVecs(), mol.Len())
	}
	prec := DefaultXYZPrecision
	if len(precision) > 0 && precision[0] >= 0 {
		prec = precision[0]
	}
	comment = strings.ReplaceAll(comment, "\n", " ")
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment)
	format := fmt.Sprintf("%%-2s %%12.%df %%12.%df %%12.%df\n", prec, prec, prec)
	for i := 0; i < mol.Len(); i++ {
		c := coords.Vec(i)
		if _, err := fmt.Fprintf(w, format, mol.Atom(i).Symbol, c.X, c.Y, c.Z); err != nil {
			return errDecorate(err, "XYZWrite")
		}
	}
	return errDecorate(w.Flush(), "XYZWrite")
}

// XYZRead reads a single-frame XYZ stream. Bonds are not part of the format,
// use AssignBonds to guess them.
func XYZRead(in io.Reader) (*Molecule, string, error) {
	mol, comment, err := XYZReadFrame(bufio.NewReader(in))
	if err == io.EOF {
		return nil, "", newError("XYZRead", "empty XYZ stream")
	}
	return mol, comment, errDecorate(err, "XYZRead")
}

// XYZReadFrame reads the next frame from a (possibly multi-frame) XYZ stream.
// It returns io.EOF, undecorated, when there are no more frames.
func XYZReadFrame(xyz *bufio.Reader) (*Molecule, string, error) {
	var line string
	var err error
	for strings.TrimSpace(line) == "" {
		line, err = xyz.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			if err == io.EOF {
				return nil, "", io.EOF
			}
			return nil, "", errDecorate(err, "XYZReadFrame")
		}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, "", newError("XYZReadFrame", "ill formatted XYZ atom count %q", strings.TrimSpace(line))
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && natoms > 0 {
		return nil, "", newError("XYZReadFrame", "truncated XYZ frame, missing comment line")
	}
	mol := NewMolecule(natoms)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, "", newError("XYZReadFrame", "line for atom %d ill formed: %q", i, strings.TrimSpace(line))
		}
		var c [3]float64
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, "", newError("XYZReadFrame", "bad coordinate for atom %d: %s", i, fields[j+1])
			}
		}
		mol.atoms = append(mol.atoms, Atom{Symbol: fields[0], X: c[0], Y: c[1], Z: c[2]})
	}
	return mol, strings.TrimRight(comment, "\r\n"), nil
}
