// Package pipeline runs the enumeration pipeline for the CLI and for library
// callers.
//
// The stages, in order:
//
//  1. Independent sets of the graph
//  2. Matchings of the graph
//  3. Compose: T-sets from (independent set, matching) pairs
//  4. Filter: T-sets kept by the size-proximity filter
//
// [Run] executes the stages with no caching. [Runner] adds a size guard, a
// content-addressed result cache, a per-run id and structured logging.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Graph:   graph.Cycle(6),
//	    Workers: 4,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(result.Filtered))
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tsets/pkg/enum"
	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library
// =============================================================================

const (
	// DefaultMaxVertices bounds the vertex count accepted by Runner.Execute.
	// Independent set enumeration visits all 2^n vertex subsets in the worst
	// case.
	DefaultMaxVertices = 20

	// DefaultMaxEdges bounds the edge count accepted by Runner.Execute.
	DefaultMaxEdges = 24

	// DefaultWorkers runs the composer sequentially.
	DefaultWorkers = 1
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Graph is the graph to enumerate. Required.
	Graph *graph.Graph `json:"-"`

	// Workers is the number of composer workers. 0 selects DefaultWorkers.
	Workers int `json:"workers,omitempty"`

	// MaxVertices and MaxEdges guard against exponential blow-up. 0 selects
	// the default; a negative value disables the guard.
	MaxVertices int `json:"max_vertices,omitempty"`
	MaxEdges    int `json:"max_edges,omitempty"`

	// Refresh skips the cache lookup but still stores the new result.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives run logs. Defaults to the runner's logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Graph == nil {
		return errors.New(errors.ErrCodeInvalidInput, "graph is required")
	}
	if err := errors.ValidateWorkers(o.Workers); err != nil {
		return err
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.MaxVertices == 0 {
		o.MaxVertices = DefaultMaxVertices
	}
	if o.MaxEdges == 0 {
		o.MaxEdges = DefaultMaxEdges
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// CheckSize returns a TOO_LARGE error if g exceeds either limit.
// Negative limits are ignored.
func CheckSize(g *graph.Graph, maxVertices, maxEdges int) error {
	if maxVertices >= 0 && g.VertexCount() > maxVertices {
		return errors.Wrap(errors.ErrCodeTooLarge,
			&errors.TooLargeError{What: "vertices", Count: g.VertexCount(), Limit: maxVertices},
			"refusing to enumerate (raise --max-vertices or pass a negative value to disable)")
	}
	if maxEdges >= 0 && g.EdgeCount() > maxEdges {
		return errors.Wrap(errors.ErrCodeTooLarge,
			&errors.TooLargeError{What: "edges", Count: g.EdgeCount(), Limit: maxEdges},
			"refusing to enumerate (raise --max-edges or pass a negative value to disable)")
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run, in stage order.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Graph is the enumerated graph.
	Graph *graph.Graph

	// GraphHash is the content hash of the graph's JSON serialization.
	GraphHash string

	IndependentSets []enum.VertexSet
	Matchings       []enum.EdgeSet
	TSets           []enum.TSet
	Filtered        []enum.TSet

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the result was loaded from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int `json:"vertex_count"`
	EdgeCount   int `json:"edge_count"`

	IndependentSetsTime time.Duration `json:"independent_sets_ns"`
	MatchingsTime       time.Duration `json:"matchings_ns"`
	ComposeTime         time.Duration `json:"compose_ns"`
	FilterTime          time.Duration `json:"filter_ns"`
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.IndependentSetsTime + s.MatchingsTime + s.ComposeTime + s.FilterTime
}
