/*
 * geometry.go, part of gonomen.
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

package geometry

import (
	"math"
	"sort"

	chem "github.com/chimie3d/gonomen"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bond lengths in A, and the factors applied to CarbonCarbon for atoms
// hanging off the main chain.
const (
	CarbonCarbon    = 1.54
	CarbonHydrogen  = 1.09
	CarbonOxygen    = 1.43
	OxygenHydrogen  = 0.96
	ZigZag          = 0.3
	BranchScale     = 0.85
	BranchTailScale = 0.7
	HydroxylScale   = 0.75
)

var tetrahedral = func() [4]r3.Vec {
	corners := [4]r3.Vec{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: -1},
	}
	for i, c := range corners {
		corners[i] = r3.Unit(c)
	}
	return corners
}()

// Tetrahedral returns the four unit vectors pointing to alternating corners
// of a cube, in their fixed preference order.
func Tetrahedral() [4]r3.Vec {
	return tetrahedral
}

// Direction returns the ith tetrahedral unit vector.
func Direction(i int) r3.Vec {
	return tetrahedral[i]
}

// Backbone returns the positions of n chain carbons along the x axis, centered
// at the origin, with every other carbon raised ZigZag A in z.
func Backbone(n int) []r3.Vec {
	ret := make([]r3.Vec, n)
	mid := float64(n-1) / 2
	for i := range ret {
		ret[i] = r3.Vec{X: (float64(i) - mid) * CarbonCarbon, Z: float64(i%2) * ZigZag}
	}
	return ret
}

// Along returns the point at distance length from origin in the direction dir,
// which must be a unit vector.
func Along(origin, dir r3.Vec, length float64) r3.Vec {
	return r3.Add(origin, r3.Scale(length, dir))
}

// Score is the sum of the distances from candidate to every position in placed,
// except the one with index parent and any that coincide with candidate.
// Larger is better.
func Score(candidate r3.Vec, placed []r3.Vec, parent int) float64 {
	var s float64
	for i, p := range placed {
		if i == parent {
			continue
		}
		if d := r3.Norm(r3.Sub(candidate, p)); d > 0 {
			s += d
		}
	}
	return s
}

// Rank sorts dirs, indexes of tetrahedral directions, from the best to the worst
// spot for an atom at distance length from origin, according to Score. Ties keep
// the order given. dirs is sorted in place and returned.
func Rank(origin r3.Vec, dirs []int, length float64, placed []r3.Vec, parent int) []int {
	scores := make(map[int]float64, len(dirs))
	for _, d := range dirs {
		scores[d] = Score(Along(origin, tetrahedral[d], length), placed, parent)
	}
	sort.SliceStable(dirs, func(i, j int) bool { return scores[dirs[i]] > scores[dirs[j]] })
	return dirs
}

// Slots tracks which of the four tetrahedral directions around an atom are taken.
// The zero value has every direction free.
type Slots struct {
	taken [4]bool
}

// Take marks the direction i as used.
func (S *Slots) Take(i int) {
	S.taken[i] = true
}

// Taken returns whether direction i is used.
func (S *Slots) Taken(i int) bool {
	return S.taken[i]
}

// TakeToward marks as used the free direction closest to v, and returns
// its index, or -1 if every direction was already taken.
func (S *Slots) TakeToward(v r3.Vec) int {
	best := -1
	bestDot := math.Inf(-1)
	u := r3.Unit(v)
	for i, d := range tetrahedral {
		if S.taken[i] {
			continue
		}
		if dot := r3.Dot(u, d); dot > bestDot {
			best, bestDot = i, dot
		}
	}
	if best >= 0 {
		S.taken[best] = true
	}
	return best
}

// Free returns the indexes of the free directions in preference order.
func (S *Slots) Free() []int {
	ret := make([]int, 0, 4)
	for i, t := range S.taken {
		if !t {
			ret = append(ret, i)
		}
	}
	return ret
}

// FreeValence returns how many more single bonds the ith atom of mol can take
// without exceeding the maximum valence of its element. Unknown elements
// are treated as tetravalent.
func FreeValence(mol *chem.Molecule, i int) int {
	max, ok := chem.MaxValence(mol.Atom(i).Symbol)
	if !ok {
		max = 4
	}
	free := max - int(math.Round(mol.Valence(i)))
	if free < 0 {
		return 0
	}
	return free
}

// Saturate bonds up to count hydrogens to the atom center of mol, at
// CarbonHydrogen A along the best free directions in slots, and marks those
// directions as taken. It never adds more hydrogens than free directions or
// free valence, and returns the indexes of the new atoms.
func Saturate(mol *chem.Molecule, center int, count int, slots *Slots) []int {
	count = min(count, FreeValence(mol, center))
	if count <= 0 {
		return nil
	}
	origin := mol.Atom(center).Pos()
	ranked := Rank(origin, slots.Free(), CarbonHydrogen, mol.Positions(), center)
	ret := make([]int, 0, count)
	for k := 0; k < count && k < len(ranked); k++ {
		d := ranked[k]
		h := mol.AddAtom("H", Along(origin, tetrahedral[d], CarbonHydrogen))
		mol.MustAddBond(center, h, chem.Single)
		slots.Take(d)
		ret = append(ret, h)
	}
	return ret
}

// Hydroxyl bonds an OH group to the atom carbon of mol along the tetrahedral
// direction dir. The oxygen goes at CarbonCarbon*HydroxylScale from the carbon
// and the hydrogen OxygenHydrogen further along the same line. It returns the
// indexes of the oxygen and the hydrogen.
func Hydroxyl(mol *chem.Molecule, carbon int, dir int) (int, int) {
	u := tetrahedral[dir]
	opos := Along(mol.Atom(carbon).Pos(), u, CarbonCarbon*HydroxylScale)
	o := mol.AddAtom("O", opos)
	mol.MustAddBond(carbon, o, chem.Single)
	h := mol.AddAtom("H", Along(opos, u, OxygenHydrogen))
	mol.MustAddBond(o, h, chem.Single)
	return o, h
}
