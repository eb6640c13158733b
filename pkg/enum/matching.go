package enum

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/matzehuels/tsets/pkg/graph"
)

// Matchings returns every non-empty subset of g's edges in which no two edges
// share an endpoint, ordered by size and then lexicographically by edge
// position.
func Matchings(g Graph) []EdgeSet {
	es := g.Edges()
	pos := positions(g.Vertices(), es)
	seen := bitset.New(uint(len(pos)))

	out := []EdgeSet{}
	for r := 1; r <= len(es); r++ {
		found := false
		Combinations(len(es), r, func(idx []int) bool {
			if !matching(es, idx, pos, seen) {
				return true
			}
			set := make(EdgeSet, r)
			for i, j := range idx {
				set[i] = es[j]
			}
			out = append(out, set)
			found = true
			return true
		})
		// Subsets of matchings are matchings.
		if !found {
			break
		}
	}
	return out
}

// matching reports whether the selected edges are pairwise vertex-disjoint.
// seen is scratch space sized to the vertex count.
func matching(es []graph.Edge, idx []int, pos map[int]uint, seen *bitset.BitSet) bool {
	seen.ClearAll()
	for _, j := range idx {
		u, v := pos[es[j].U], pos[es[j].V]
		if seen.Test(u) || seen.Test(v) {
			return false
		}
		seen.Set(u).Set(v)
	}
	return true
}

// positions maps vertex labels to dense bit positions. Endpoints missing from
// the vertex sequence get positions after it.
func positions(vs []int, es []graph.Edge) map[int]uint {
	pos := make(map[int]uint, len(vs))
	add := func(v int) {
		if _, ok := pos[v]; !ok {
			pos[v] = uint(len(pos))
		}
	}
	for _, v := range vs {
		add(v)
	}
	for _, e := range es {
		add(e.U)
		add(e.V)
	}
	return pos
}
