/*
 * skeleton.go, part of gonomen.
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
	"fmt"
	"sort"
	"strings"

	"github.com/dominikbraun/graph"
)

// Skeleton is a carbon tree given as a parent array: Skeleton[i] is the
// node that i hangs from, and Skeleton[0] is -1. Every parent has a lower
// index than its child, so node 0 is always the root.
type Skeleton []int

// Path returns the unbranched skeleton of n carbons.
func Path(n int) Skeleton {
	ret := make(Skeleton, n)
	for i := range ret {
		ret[i] = i - 1
	}
	return ret
}

// Len returns the number of carbons in the skeleton.
func (S Skeleton) Len() int {
	return len(S)
}

// Graph returns the skeleton as an undirected tree, nodes keyed by index.
// It panics if S is not a parent array of a tree.
func (S Skeleton) Graph() graph.Graph[int, int] {
	g := graph.New(graph.IntHash, graph.Tree())
	for i := range S {
		if err := g.AddVertex(i); err != nil {
			panic(fmt.Sprintf("isomer: skeleton node %d: %s", i, err))
		}
	}
	for i, p := range S {
		if p < 0 {
			continue
		}
		if err := g.AddEdge(p, i); err != nil {
			panic(fmt.Sprintf("isomer: skeleton edge %d-%d: %s", p, i, err))
		}
	}
	return g
}

// adjacency returns the neighbors of each node of g in ascending order.
func adjacency(g graph.Graph[int, int]) [][]int {
	m, err := g.AdjacencyMap()
	if err != nil {
		panic("isomer: " + err.Error())
	}
	ret := make([][]int, len(m))
	for v, edges := range m {
		for w := range edges {
			ret[v] = append(ret[v], w)
		}
		sort.Ints(ret[v])
	}
	return ret
}

// Canonical returns the canonical form of the skeleton rooted at node 0.
// A node is written as its children's forms, sorted and concatenated,
// between parentheses, so a lone carbon is "()" and propane rooted at an
// end is "((()))". Two skeletons have the same form if and only if they
// are the same tree rooted at node 0.
func (S Skeleton) Canonical() string {
	if len(S) == 0 {
		return ""
	}
	return canonical(adjacency(S.Graph()), 0, -1)
}

func canonical(adj [][]int, node, from int) string {
	var children []string
	for _, n := range adj[node] {
		if n != from {
			children = append(children, canonical(adj, n, node))
		}
	}
	sort.Strings(children)
	return "(" + strings.Join(children, "") + ")"
}

// farthest returns the first node found at the largest distance from
// start by a depth-first walk that visits neighbors in ascending order.
func farthest(adj [][]int, start int) int {
	best, bestDepth := start, 0
	var walk func(node, from, depth int)
	walk = func(node, from, depth int) {
		if depth > bestDepth {
			best, bestDepth = node, depth
		}
		for _, n := range adj[node] {
			if n != from {
				walk(n, node, depth+1)
			}
		}
	}
	walk(start, -1, 0)
	return best
}

// LongestPath returns the nodes of a longest path in the skeleton, from one
// end to the other. Among paths of the same length, the one discovered
// first wins: the far end of a walk from node 0, then the far end of a walk
// from there.
func (S Skeleton) LongestPath() []int {
	if len(S) == 0 {
		return nil
	}
	g := S.Graph()
	adj := adjacency(g)
	a := farthest(adj, 0)
	b := farthest(adj, a)
	if a == b {
		return []int{a}
	}
	path, err := graph.ShortestPath(g, a, b)
	if err != nil {
		return []int{a}
	}
	return path
}

// Centers returns the one or two nodes in the middle of the longest path,
// in ascending order.
func (S Skeleton) Centers() []int {
	path := S.LongestPath()
	l := len(path)
	if l == 0 {
		return nil
	}
	if l%2 == 1 {
		return []int{path[l/2]}
	}
	ret := []int{path[l/2-1], path[l/2]}
	sort.Ints(ret)
	return ret
}

// Reroot returns the same tree relabeled breadth-first from root, so that
// root becomes node 0.
func (S Skeleton) Reroot(root int) Skeleton {
	adj := adjacency(S.Graph())
	label := make(map[int]int, len(S))
	ret := make(Skeleton, 0, len(S))
	label[root] = 0
	ret = append(ret, -1)
	queue := []int{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, n := range adj[node] {
			if _, ok := label[n]; ok {
				continue
			}
			label[n] = len(ret)
			ret = append(ret, label[node])
			queue = append(queue, n)
		}
	}
	return ret
}

// Normalize reroots the skeleton at its center. When there are two
// centers, the one giving the smaller canonical form is used. The
// canonical form of the result identifies the unrooted tree.
func (S Skeleton) Normalize() (Skeleton, string) {
	var best Skeleton
	var form string
	for _, c := range S.Centers() {
		r := S.Reroot(c)
		f := r.Canonical()
		if best == nil || f < form {
			best, form = r, f
		}
	}
	return best, form
}

// Degrees returns the number of carbons bonded to each carbon.
func (S Skeleton) Degrees() []int {
	ret := make([]int, len(S))
	for i, p := range S {
		if p >= 0 {
			ret[i]++
			ret[p]++
		}
	}
	return ret
}

type partial struct {
	parents  Skeleton
	children []int
}

// Enumerate returns skeletons of n carbons where no carbon has more than four
// carbon neighbors, stopping after max of them (no limit if max < 1). Each
// tree is produced once for every breadth-first labeling, so many results
// are the same tree; Distinct removes the duplicates. The unbranched chain
// comes first. The second value is true if the limit cut the enumeration.
func Enumerate(n, max int) ([]Skeleton, bool) {
	if n < 1 {
		return nil, false
	}
	var ret []Skeleton
	stack := []partial{{parents: Skeleton{-1}, children: []int{0}}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size := len(cur.parents)
		if size == n {
			if max > 0 && len(ret) >= max {
				return ret, true
			}
			ret = append(ret, cur.parents)
			continue
		}
		//Parents never decrease, so every tree is built in breadth-first order.
		first := 0
		if size > 1 {
			first = cur.parents[size-1]
		}
		for j := first; j < size; j++ {
			deg := cur.children[j]
			if j > 0 {
				deg++
			}
			if deg >= 4 {
				continue
			}
			next := partial{
				parents:  append(append(make(Skeleton, 0, n), cur.parents...), j),
				children: append(append(make([]int, 0, n), cur.children...), 0),
			}
			next.children[j]++
			stack = append(stack, next)
		}
	}
	return ret, false
}

// Distinct returns the skeletons that are different trees, each normalized
// to its center, keeping the first occurrence of each, and their canonical
// forms.
func Distinct(skeletons []Skeleton) ([]Skeleton, []string) {
	seen := make(map[string]bool)
	var ret []Skeleton
	var forms []string
	for _, s := range skeletons {
		norm, form := s.Normalize()
		if seen[form] {
			continue
		}
		seen[form] = true
		ret = append(ret, norm)
		forms = append(forms, form)
	}
	return ret, forms
}
