/*
 * graph.go, part of gonomen.
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

// Package chemgraph gives a gonum graph view of a molecule: one node per
// atom, with the atom index as ID, and one edge per bond, weighted by
// the bond order.
package chemgraph

import (
	"sort"

	chem "github.com/chimie3d/gonomen"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Graph returns the molecular graph of mol. If heavy is true, hydrogens and
// their bonds are left out.
func Graph(mol *chem.Molecule, heavy bool) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	keep := func(i int) bool {
		return !heavy || mol.Atom(i).Symbol != "H"
	}
	for i := 0; i < mol.Len(); i++ {
		if keep(i) {
			g.AddNode(simple.Node(i))
		}
	}
	for _, b := range mol.Bonds() {
		if !keep(b.A) || !keep(b.B) {
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(b.A), T: simple.Node(b.B), W: b.Order.Weight()})
	}
	return g
}

// Components returns the atom indexes of each connected fragment of mol,
// each sorted, fragments ordered by their first atom.
func Components(mol *chem.Molecule) [][]int {
	cc := topo.ConnectedComponents(Graph(mol, false))
	ret := make([][]int, len(cc))
	for i, c := range cc {
		ret[i] = ids(c)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// Connected returns true if every atom of mol can be reached from every other
// through bonds. An empty molecule is not connected.
func Connected(mol *chem.Molecule) bool {
	if mol.Len() == 0 {
		return false
	}
	g := Graph(mol, false)
	var bf traverse.BreadthFirst
	seen := 0
	bf.Walk(g, simple.Node(0), func(graph.Node, int) bool {
		seen++
		return false
	})
	return seen == mol.Len()
}

// HeavyDegrees returns, for each atom of mol, the number of non-hydrogen atoms
// bonded to it.
func HeavyDegrees(mol *chem.Molecule) []int {
	g := Graph(mol, true)
	ret := make([]int, mol.Len())
	for i := range ret {
		if g.Node(int64(i)) == nil {
			continue
		}
		ret[i] = g.From(int64(i)).Len()
	}
	return ret
}

// Skeleton returns the indexes of the carbons of mol and, for each of them,
// the positions in that list of the carbons bonded to it.
func Skeleton(mol *chem.Molecule) ([]int, [][]int) {
	var carbons []int
	pos := make(map[int]int)
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Symbol == "C" {
			pos[i] = len(carbons)
			carbons = append(carbons, i)
		}
	}
	g := Graph(mol, true)
	adj := make([][]int, len(carbons))
	for k, c := range carbons {
		for _, n := range ids(graph.NodesOf(g.From(int64(c)))) {
			if j, ok := pos[n]; ok {
				adj[k] = append(adj[k], j)
			}
		}
	}
	return carbons, adj
}

func ids(nodes []graph.Node) []int {
	ret := make([]int, len(nodes))
	for i, n := range nodes {
		ret[i] = int(n.ID())
	}
	sort.Ints(ret)
	return ret
}
