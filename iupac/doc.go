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
Package iupac reads and writes the Romanian IUPAC names of acyclic
hydrocarbons and alcohols.

Parse turns a name such as "2,3-dimetilhexan", "but-1-ena" or
"propan-2-ol" into a ParsedName: the length of the main chain, the
alkyl substituents, the positions of double and triple bonds, the
position of the hydroxyl group and an optional cis/trans marker.
FullName does the inverse, so that Parse(FullName(p)) gives back p
for every p that Parse can produce.

Names are normalized first (Normalize): lowercase, no spaces, and no
diacritics, so "but-1-enă" and "BUT-1-ENA" are the same name.
*/
package iupac
