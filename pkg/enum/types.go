package enum

import "github.com/matzehuels/tsets/pkg/graph"

// Graph is the read-only view of a graph the enumerators need.
// *graph.Graph satisfies it.
type Graph interface {
	Vertices() []int
	Edges() []graph.Edge
	HasEdge(u, v int) bool
}

// VertexSet is an independent set, members in vertex-sequence order.
type VertexSet []int

// EdgeSet is a matching, members in edge-sequence order.
type EdgeSet []graph.Edge

// Endpoints returns the endpoints of every edge in es, in order.
func (es EdgeSet) Endpoints() []int {
	out := make([]int, 0, 2*len(es))
	for _, e := range es {
		out = append(out, e.U, e.V)
	}
	return out
}

// TSet pairs an independent set with an equal-size matching that is disjoint
// from and non-adjacent to it. The indices point back into the lists the
// T-set was composed from.
type TSet struct {
	IndependentIndex int       `json:"v_index"`
	MatchingIndex    int       `json:"e_index"`
	Vertices         VertexSet `json:"vertices"`
	Edges            EdgeSet   `json:"edges"`
}

// Size returns the size score |Vertices| + |Edges|.
func (t TSet) Size() int { return len(t.Vertices) + len(t.Edges) }
