package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/tsets/pkg/enum"
	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/pipeline"
)

type document struct {
	RunID           string           `json:"run_id,omitempty"`
	Graph           *graph.Graph     `json:"graph"`
	IndependentSets []enum.VertexSet `json:"independent_sets"`
	Matchings       []enum.EdgeSet   `json:"matchings"`
	TSets           []tset           `json:"tsets"`
	Filtered        []tset           `json:"filtered"`
	Stats           stats            `json:"stats"`
}

type tset struct {
	enum.TSet
	Size int `json:"size"`
}

type stats struct {
	Vertices        int     `json:"vertices"`
	Edges           int     `json:"edges"`
	IndependentSets int     `json:"independent_sets"`
	Matchings       int     `json:"matchings"`
	TSets           int     `json:"tsets"`
	Filtered        int     `json:"filtered"`
	DurationMS      float64 `json:"duration_ms"`
	CacheHit        bool    `json:"cache_hit"`
}

// WriteJSON encodes result as indented JSON and writes it to w.
func WriteJSON(w io.Writer, result *pipeline.Result) error {
	out := document{
		RunID:           result.RunID,
		Graph:           result.Graph,
		IndependentSets: orEmpty(result.IndependentSets),
		Matchings:       orEmpty(result.Matchings),
		TSets:           withSizes(result.TSets),
		Filtered:        withSizes(result.Filtered),
		Stats: stats{
			Vertices:        result.Stats.VertexCount,
			Edges:           result.Stats.EdgeCount,
			IndependentSets: len(result.IndependentSets),
			Matchings:       len(result.Matchings),
			TSets:           len(result.TSets),
			Filtered:        len(result.Filtered),
			DurationMS:      float64(result.Stats.Total().Microseconds()) / 1000,
			CacheHit:        result.CacheHit,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func withSizes(in []enum.TSet) []tset {
	out := make([]tset, len(in))
	for i, t := range in {
		out[i] = tset{TSet: t, Size: t.Size()}
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
