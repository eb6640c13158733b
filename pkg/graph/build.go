package graph

import (
	"fmt"
	"slices"
)

// Kind names a builder usable from configuration and the command line.
type Kind string

// Supported graph kinds.
const (
	KindCycle    Kind = "cycle"
	KindPath     Kind = "path"
	KindComplete Kind = "complete"
	KindEmpty    Kind = "empty"
)

var builders = map[Kind]func(n int) *Graph{
	KindCycle:    Cycle,
	KindPath:     Path,
	KindComplete: Complete,
	KindEmpty:    Empty,
}

// Kinds returns the supported kinds in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(builders))
	for k := range builders {
		out = append(out, string(k))
	}
	slices.Sort(out)
	return out
}

// Build constructs a graph of the given kind on vertices 0..n-1.
func Build(kind Kind, n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("vertex count must be >= 0, got %d", n)
	}
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("unknown graph kind %q", kind)
	}
	return build(n), nil
}

// Empty returns n isolated vertices 0..n-1.
func Empty(n int) *Graph {
	g := New()
	for i := range n {
		must(g.AddVertex(i))
	}
	return g
}

// Cycle returns the cycle graph on 0..n-1. Edges are listed by their lower
// endpoint: (0, 1), (0, n-1), (1, 2), ..., (n-2, n-1), which is the order
// networkx reports for cycle_graph(n). Cycle(2) has a single edge and Cycle(1)
// has none.
func Cycle(n int) *Graph {
	g := Empty(n)
	if n < 2 {
		return g
	}
	must(g.AddEdge(0, 1))
	if n > 2 {
		must(g.AddEdge(0, n-1))
	}
	for i := 1; i+1 < n; i++ {
		must(g.AddEdge(i, i+1))
	}
	return g
}

// Path returns the path graph 0-1-...-(n-1).
func Path(n int) *Graph {
	g := Empty(n)
	for i := 0; i+1 < n; i++ {
		must(g.AddEdge(i, i+1))
	}
	return g
}

// Complete returns the complete graph on 0..n-1, edges in lexicographic order.
func Complete(n int) *Graph {
	g := Empty(n)
	for i := range n {
		for j := i + 1; j < n; j++ {
			must(g.AddEdge(i, j))
		}
	}
	return g
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
