/*
 * doc.go, part of gonomen.
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

/*
Package catalog holds the compounds that are known by name, with ready
structures, and the isomer sets that can't be generated from a name.

The data lives in data/compounds.yaml, embedded in the binary and loaded
by Default. A compound is looked up by its key ("benzene") or by any of its
aliases ("benzen"), without regard to case, diacritics or spaces. Its
structure comes from a name the parser understands, from the two groups
of an ether, or from explicit atoms and bonds for anything the grammar
can't express: rings, aromatic bonds, carbonyls, nitrogen.

Every structure is checked when the catalog is loaded: bonds must join
existing atoms, no atom may exceed its valence and the structure must be
in one piece.
*/
package catalog
