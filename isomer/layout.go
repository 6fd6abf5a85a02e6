/*
 * layout.go, part of gonomen.
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

package isomer

import (
	"math"
	"math/rand"

	chem "github.com/chimie3d/gonomen"
	"github.com/chimie3d/gonomen/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// Layout parameters for skeleton structures. Carbons are placed
// breadth-first from node 0; siblings are spread Spread apart around their
// parent, every other one Rise above or below it, with up to Jitter radians
// of random turn.
const (
	Spread = 2 * math.Pi / 3
	Rise   = 0.5
	Jitter = 0.3
)

// Structure returns a 3D structure for the skeleton with every carbon
// saturated with hydrogens. The layout is random within Jitter but the
// same for every call with a given skeleton.
func (S Skeleton) Structure() *chem.Molecule {
	n := len(S)
	mol := chem.NewMolecule(3*n + 2)
	if n == 0 {
		return mol
	}
	rng := rand.New(rand.NewSource(int64(n)))
	adj := adjacency(S.Graph())
	flat := math.Sqrt(geometry.CarbonCarbon*geometry.CarbonCarbon - Rise*Rise)
	atoms := make([]int, n)
	heading := make([]float64, n)
	for i := range atoms {
		atoms[i] = -1
	}
	atoms[0] = mol.AddAtom("C", r3.Vec{})
	queue := []int{0}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		origin := mol.Atom(atoms[node]).Pos()
		//the root spreads its children from 0; other carbons turn away from
		//their own parent.
		base := 0.0
		if node != 0 {
			base = heading[node] + Spread
		}
		k := 0
		for _, next := range adj[node] {
			if atoms[next] >= 0 {
				continue
			}
			angle := base + float64(k)*Spread + (rng.Float64()*2-1)*Jitter
			rise := Rise
			if k%2 == 1 {
				rise = -Rise
			}
			pos := r3.Add(origin, r3.Vec{X: flat * math.Cos(angle), Y: flat * math.Sin(angle), Z: rise})
			atoms[next] = mol.AddAtom("C", pos)
			mol.MustAddBond(atoms[node], atoms[next], chem.Single)
			heading[next] = angle
			queue = append(queue, next)
			k++
		}
	}
	for _, a := range atoms {
		var slots geometry.Slots
		origin := mol.Atom(a).Pos()
		for _, b := range mol.Neighbors(a) {
			slots.TakeToward(r3.Sub(mol.Atom(b).Pos(), origin))
		}
		geometry.Saturate(mol, a, geometry.FreeValence(mol, a), &slots)
	}
	return mol
}
