// Package graph builds the barrel-to-barrel export graph of a source tree
// and detects dependency cycles between features.
package graph

import "strings"

// Graph is the directed export graph over monolithic barrel files. Nodes
// are small integer indices assigned in lexical path order during the scan;
// the index→path side table is kept for reporting only.
type Graph struct {
	paths []string
	index map[string]int
	adj   [][]int
}

// NewGraph creates an empty graph over the given barrel paths. Indices
// follow the order of the slice.
func NewGraph(paths []string) *Graph {
	g := &Graph{
		paths: paths,
		index: make(map[string]int, len(paths)),
		adj:   make([][]int, len(paths)),
	}
	for i, p := range paths {
		g.index[p] = i
	}
	return g
}

// Len returns the number of barrel nodes.
func (g *Graph) Len() int {
	return len(g.paths)
}

// Path returns the barrel path for a node index.
func (g *Graph) Path(i int) string {
	return g.paths[i]
}

// Lookup returns the node index for a barrel path.
func (g *Graph) Lookup(path string) (int, bool) {
	i, ok := g.index[path]
	return i, ok
}

// Edges returns the neighbor indices of a node.
func (g *Graph) Edges(i int) []int {
	return g.adj[i]
}

// AddEdge records a directed export edge. Self-edges are dropped silently:
// a barrel exporting itself is never a length-1 cycle. Duplicate edges
// collapse to one.
func (g *Graph) AddEdge(from, to int) {
	if from == to {
		return
	}
	for _, n := range g.adj[from] {
		if n == to {
			return
		}
	}
	g.adj[from] = append(g.adj[from], to)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, ns := range g.adj {
		total += len(ns)
	}
	return total
}

// FormatCycle renders a cycle as an arrow-separated chain of barrel paths,
// closing back on the first entry.
func (g *Graph) FormatCycle(cycle []int) string {
	var b strings.Builder
	for _, n := range cycle {
		b.WriteString(g.paths[n])
		b.WriteString(" → ")
	}
	if len(cycle) > 0 {
		b.WriteString(g.paths[cycle[0]])
	}
	return b.String()
}
