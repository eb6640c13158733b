package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/render/nodelink"
)

// NoHighlight selects a plain drawing with no T-set highlighted.
const NoHighlight = -1

// RenderOptions configures Render.
type RenderOptions struct {
	// Format is one of nodelink.Formats. Empty selects svg.
	Format string

	// Highlight is an index into Result.Filtered, or NoHighlight.
	Highlight int

	// Layout is the Graphviz engine. Empty selects nodelink.DefaultLayout.
	Layout string
}

// ValidateFormat checks that a render format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", format, nodelink.Formats)
}

// Render draws the result's graph, optionally highlighting one filtered
// T-set.
func Render(ctx context.Context, result *Result, opts RenderOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = nodelink.FormatSVG
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	dotOpts := nodelink.Options{
		Layout: opts.Layout,
		Title:  fmt.Sprintf("%d vertices, %d edges", result.Graph.VertexCount(), result.Graph.EdgeCount()),
	}
	if opts.Highlight != NoHighlight {
		if err := errors.ValidateTSetIndex(opts.Highlight, len(result.Filtered)); err != nil {
			return nil, err
		}
		ts := result.Filtered[opts.Highlight]
		dotOpts.Title = fmt.Sprintf("T_%d: V_%d ∪ E_%d", opts.Highlight, ts.IndependentIndex, ts.MatchingIndex)
		dotOpts.HighlightVertices = ts.Vertices
		dotOpts.HighlightEdges = ts.Edges
	}

	dot := nodelink.ToDOT(result.Graph, dotOpts)
	out, err := nodelink.Render(ctx, dot, opts.Format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", opts.Format)
	}
	return out, nil
}
