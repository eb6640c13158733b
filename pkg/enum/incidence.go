package enum

import mapset "github.com/deckarep/golang-set/v2"

// NonIncident reports whether no vertex of vs is adjacent in g to an endpoint
// of an edge in es.
func NonIncident(g Graph, vs VertexSet, es EdgeSet) bool {
	for _, v := range vs {
		for _, e := range es {
			if g.HasEdge(v, e.U) || g.HasEdge(v, e.V) {
				return false
			}
		}
	}
	return true
}

// Disjoint reports whether no vertex of vs is an endpoint of an edge in es.
func Disjoint(vs VertexSet, es EdgeSet) bool {
	return disjoint(vertexSet(vs), endpointSet(es))
}

func disjoint(a, b mapset.Set[int]) bool {
	return a.Intersect(b).Cardinality() == 0
}

func vertexSet(vs VertexSet) mapset.Set[int] {
	return mapset.NewThreadUnsafeSet(vs...)
}

func endpointSet(es EdgeSet) mapset.Set[int] {
	return mapset.NewThreadUnsafeSet(es.Endpoints()...)
}
