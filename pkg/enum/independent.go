package enum

// IndependentSets returns every non-empty subset of g's vertices in which no
// two members are adjacent, ordered by size and then lexicographically by
// vertex position.
func IndependentSets(g Graph) []VertexSet {
	vs := g.Vertices()
	out := []VertexSet{}
	for r := 1; r <= len(vs); r++ {
		found := false
		Combinations(len(vs), r, func(idx []int) bool {
			if !independent(g, vs, idx) {
				return true
			}
			set := make(VertexSet, r)
			for i, j := range idx {
				set[i] = vs[j]
			}
			out = append(out, set)
			found = true
			return true
		})
		// Subsets of independent sets are independent, so no larger ones exist.
		if !found {
			break
		}
	}
	return out
}

func independent(g Graph, vs, idx []int) bool {
	for a := 0; a < len(idx); a++ {
		for b := a + 1; b < len(idx); b++ {
			if g.HasEdge(vs[idx[a]], vs[idx[b]]) {
				return false
			}
		}
	}
	return true
}
