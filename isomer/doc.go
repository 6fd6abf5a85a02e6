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
Package isomer finds isomers of the compounds read by package iupac.

Alkanes are enumerated as carbon skeletons: trees where no carbon has more
than four carbon neighbors. Enumerate produces every breadth-first labeled
tree, up to a limit on the raw count; Distinct drops repeated trees by
comparing the canonical forms of the trees rooted at their centers. Each
remaining skeleton is named after its longest chain and laid out in 3D.

For other compounds, Generate derives variants of the parsed name: bond
and hydroxyl positions, cis/trans forms, branch positions and, for
alcohols, the ethers with the same formula. The results form a Set, unique
by name and capped in size.
*/
package isomer
