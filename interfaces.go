/*
 * interfaces.go, part of gonomen.
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

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	// Atom returns the Atom corresponding to the index i.
	// Should panic if out of range.
	Atom(i int) Atom

	Len() int
}

// Bonder is an Atomer that also knows the bonds between its atoms.
type Bonder interface {
	Atomer

	// Bonds returns the bonds. The slice should not be modified.
	Bonds() []Bond
}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the string to the call trail and returns the trail. An empty string only returns the current trail.
}
