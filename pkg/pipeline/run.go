package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/tsets/pkg/enum"
	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/observability"
)

// Run executes every stage on g without size guard or caching. The context is
// checked between stages and inside the composer; on cancellation Run returns
// the context error.
func Run(ctx context.Context, g *graph.Graph, workers int) (*Result, error) {
	hooks := observability.Pipeline()
	result := &Result{
		Graph: g,
		Stats: Stats{VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()},
	}

	// Stage 1: Independent sets
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	hooks.OnStageStart(ctx, observability.StageIndependentSets, g.VertexCount())
	result.IndependentSets = enum.IndependentSets(g)
	result.Stats.IndependentSetsTime = time.Since(start)
	hooks.OnStageComplete(ctx, observability.StageIndependentSets, len(result.IndependentSets), result.Stats.IndependentSetsTime, nil)

	// Stage 2: Matchings
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	hooks.OnStageStart(ctx, observability.StageMatchings, g.EdgeCount())
	result.Matchings = enum.Matchings(g)
	result.Stats.MatchingsTime = time.Since(start)
	hooks.OnStageComplete(ctx, observability.StageMatchings, len(result.Matchings), result.Stats.MatchingsTime, nil)

	// Stage 3: Compose
	start = time.Now()
	hooks.OnStageStart(ctx, observability.StageCompose, len(result.IndependentSets))
	tsets, err := enum.ComposeParallel(ctx, g, result.IndependentSets, result.Matchings, workers)
	result.Stats.ComposeTime = time.Since(start)
	hooks.OnStageComplete(ctx, observability.StageCompose, len(tsets), result.Stats.ComposeTime, err)
	if err != nil {
		return nil, err
	}
	result.TSets = tsets

	// Stage 4: Filter
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	hooks.OnStageStart(ctx, observability.StageFilter, len(result.TSets))
	result.Filtered = enum.FilterByProximity(result.TSets)
	result.Stats.FilterTime = time.Since(start)
	hooks.OnStageComplete(ctx, observability.StageFilter, len(result.Filtered), result.Stats.FilterTime, nil)

	return result, nil
}
