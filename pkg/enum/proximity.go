package enum

// FilterByProximity keeps each T-set whose size is within 1 of the size of at
// least one other T-set in tsets. Order is preserved. Fewer than two inputs
// yield an empty result.
func FilterByProximity(tsets []TSet) []TSet {
	out := []TSet{}
	if len(tsets) < 2 {
		return out
	}

	// Counting sizes is equivalent to the pairwise comparison: another T-set
	// of equal size exists iff the count exceeds one.
	counts := make(map[int]int)
	for _, t := range tsets {
		counts[t.Size()]++
	}
	for _, t := range tsets {
		s := t.Size()
		if counts[s] > 1 || counts[s-1] > 0 || counts[s+1] > 0 {
			out = append(out, t)
		}
	}
	return out
}

// HasNeighbor reports whether some T-set other than tsets[k] has a size within
// 1 of tsets[k]. It is the pairwise definition FilterByProximity implements.
func HasNeighbor(tsets []TSet, k int) bool {
	s := tsets[k].Size()
	for l, t := range tsets {
		if l == k {
			continue
		}
		if d := t.Size() - s; d >= -1 && d <= 1 {
			return true
		}
	}
	return false
}
