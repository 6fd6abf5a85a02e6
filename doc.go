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
Package chem is the main package of the gonomen library. It provides atom, bond and molecule
structures, element data, molecular formulas and facilities for reading and writing XYZ and
JSON files.

# gonomen capabilities

  - Parses Romanian IUPAC names of acyclic hydrocarbons and alcohols (package iupac)
    and formats structured names back into text.
  - Builds deterministic 3D structures from parsed names (package builder), placing
    substituents and hydrogens on tetrahedral directions (package geometry).
  - Enumerates structural isomers: alkane skeletons up to ten carbons, positional
    and chain isomers, alcohol/ether functional isomers and cis/trans pairs (package isomer).
  - Keeps a small embedded catalog of known compounds (package catalog) and
    puts everything behind a search facade with back navigation (package explorer).
  - Writes multi-structure XYZ archives compressed with zstd or gzip (package multixyz)
    and plots isomer counts (package chemplot).
  - Summarizes bond lengths per element pair (package chemstat).
*/
package chem
