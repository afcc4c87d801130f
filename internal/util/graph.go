// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package util

// Graph is an adjacency list of directed edges between integer vertices.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool {
	for _, succ := range g[from] {
		if succ == to {
			return true
		}
	}
	return false
}

// Transpose returns a copy of the graph with every edge reversed.
func (g Graph) Transpose() Graph {
	t := NewGraph(len(g))
	for from, succs := range g {
		for _, to := range succs {
			t[to] = append(t[to], from)
		}
	}
	return t
}

// PostOrder returns the vertices reachable from entry, each listed after all of its successors.
// If reverse is true, the order is reversed.
func (g Graph) PostOrder(entry int, reverse bool) []int {
	order := make([]int, 0, len(g))
	seen := make([]bool, len(g))
	order = g.postOrder(entry, order, seen)
	if reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	return order
}

func (g Graph) postOrder(curr int, order []int, seen []bool) []int {
	if seen[curr] {
		return order
	}
	seen[curr] = true
	for _, succ := range g[curr] {
		order = g.postOrder(succ, order, seen)
	}
	return append(order, curr)
}

// Reachable reports, for each vertex, whether it can be reached from any of the given roots.
func (g Graph) Reachable(roots ...int) []bool {
	seen := make([]bool, len(g))
	for _, root := range roots {
		g.postOrder(root, nil, seen)
	}
	return seen
}
