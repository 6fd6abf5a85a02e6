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
Package multixyz stores several structures in one file, as a sequence of
XYZ frames, optionally compressed.

The format is plain multi-frame XYZ: for each structure, a line with the
number of atoms, a comment line (here, usually the name of the isomer) and
one line per atom with the element symbol and the x, y and z coordinates
in A. Frames follow each other with nothing in between. Bonds are not
stored; chem.AssignBonds can guess them from distances.

The compression is chosen from the file extension: ".zst" or ".zstd" for
Z-standard, ".gz" for gzip, anything else for no compression. Writers use
the best compression level of each codec.
*/
package multixyz
