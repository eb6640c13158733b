package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/tsets/pkg/enum"
)

// cachedResult is the cache encoding of a Result. The graph itself is not
// stored: the cache key is derived from it, so the caller already has it.
type cachedResult struct {
	IndependentSets []enum.VertexSet `json:"independent_sets"`
	Matchings       []enum.EdgeSet   `json:"matchings"`
	TSets           []enum.TSet      `json:"tsets"`
	Filtered        []enum.TSet      `json:"filtered"`
	Stats           Stats            `json:"stats"`
}

func encodeResult(r *Result) ([]byte, error) {
	return json.Marshal(cachedResult{
		IndependentSets: r.IndependentSets,
		Matchings:       r.Matchings,
		TSets:           r.TSets,
		Filtered:        r.Filtered,
		Stats:           r.Stats,
	})
}

// decodeResult restores a cached result and checks that every T-set index
// points into the stored lists.
func decodeResult(data []byte) (*Result, error) {
	var c cachedResult
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	for _, list := range [][]enum.TSet{c.TSets, c.Filtered} {
		for _, t := range list {
			if t.IndependentIndex < 0 || t.IndependentIndex >= len(c.IndependentSets) ||
				t.MatchingIndex < 0 || t.MatchingIndex >= len(c.Matchings) {
				return nil, fmt.Errorf("T-set index (%d, %d) out of range", t.IndependentIndex, t.MatchingIndex)
			}
		}
	}
	return &Result{
		IndependentSets: nonNil(c.IndependentSets),
		Matchings:       nonNil(c.Matchings),
		TSets:           nonNil(c.TSets),
		Filtered:        nonNil(c.Filtered),
		Stats:           c.Stats,
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
