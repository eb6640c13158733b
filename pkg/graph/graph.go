package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateVertex is returned by [Graph.AddVertex] when the label is
	// already present.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned by [Graph.AddEdge] when either endpoint
	// has not been added as a vertex.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex.
	ErrSelfLoop = errors.New("self-loop")
)

// Edge is an undirected edge. U and V keep the orientation the edge was
// added with, which only matters for display.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Has reports whether v is an endpoint of e.
func (e Edge) Has(v int) bool { return e.U == v || e.V == v }

// Sorted returns e with the smaller label first.
func (e Edge) Sorted() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// String formats the edge as a tuple, e.g. "(0, 1)".
func (e Edge) String() string { return fmt.Sprintf("(%d, %d)", e.U, e.V) }

// Graph is a simple undirected graph with ordered vertices and edges.
//
// The zero value is not usable - use New or one of the builders.
type Graph struct {
	vertices []int
	index    map[int]int // label -> position in vertices
	edges    []Edge
	edgeSet  map[Edge]struct{} // sorted edges
	adj      map[int][]int     // label -> neighbours in edge insertion order
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index:   make(map[int]int),
		edgeSet: make(map[Edge]struct{}),
		adj:     make(map[int][]int),
	}
}

// AddVertex appends v to the vertex sequence.
func (g *Graph) AddVertex(v int) error {
	if _, ok := g.index[v]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	return nil
}

// AddEdge appends the undirected edge {u, v}. Adding an edge that already
// exists, in either orientation, is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("%w: %d", ErrSelfLoop, u)
	}
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d", ErrUnknownVertex, v)
	}
	e := Edge{U: u, V: v}
	key := e.Sorted()
	if _, ok := g.edgeSet[key]; ok {
		return nil
	}
	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// Vertices returns a copy of the vertex sequence.
func (g *Graph) Vertices() []int { return slices.Clone(g.vertices) }

// Edges returns a copy of the edge sequence.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a vertex of g.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.index[v]
	return ok
}

// HasEdge reports whether u and v are adjacent. It is symmetric.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edgeSet[Edge{U: u, V: v}.Sorted()]
	return ok
}

// Index returns the position of v in the vertex sequence.
func (g *Graph) Index(v int) (int, bool) {
	i, ok := g.index[v]
	return i, ok
}

// Neighbors returns the vertices adjacent to v, in edge insertion order.
func (g *Graph) Neighbors(v int) []int { return slices.Clone(g.adj[v]) }

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := New()
	for _, v := range g.vertices {
		_ = out.AddVertex(v)
	}
	for _, e := range g.edges {
		_ = out.AddEdge(e.U, e.V)
	}
	return out
}

// String returns a short summary such as "graph(6 vertices, 6 edges)".
func (g *Graph) String() string {
	return fmt.Sprintf("graph(%d vertices, %d edges)", len(g.vertices), len(g.edges))
}
