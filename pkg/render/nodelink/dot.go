package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tsets/pkg/graph"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatDOT}

// Default layout engine and highlight colours.
const (
	DefaultLayout   = "circo"
	vertexFill      = "#f4a261"
	edgeColor       = "#2a9d8f"
	edgePenWidth    = 4
	defaultPenWidth = 1.5
)

// Options configures node-link diagram generation.
type Options struct {
	// Layout is the Graphviz engine (circo, neato, dot, ...). Empty selects
	// DefaultLayout.
	Layout string

	// Title is drawn above the graph when non-empty.
	Title string

	// HighlightVertices are filled.
	HighlightVertices []int

	// HighlightEdges are drawn thick and coloured, in either orientation.
	HighlightEdges []graph.Edge
}

// ToDOT converts a graph to Graphviz DOT source. Vertices and edges appear in
// graph order so the output is deterministic.
func ToDOT(g *graph.Graph, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	hv := make(map[int]bool, len(opts.HighlightVertices))
	for _, v := range opts.HighlightVertices {
		hv[v] = true
	}
	he := make(map[graph.Edge]bool, len(opts.HighlightEdges))
	for _, e := range opts.HighlightEdges {
		he[e.Sorted()] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=20;\n", opts.Title)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=16, width=0.5, fixedsize=true];\n")
	fmt.Fprintf(&buf, "  edge [penwidth=%g];\n", defaultPenWidth)
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(v))}
		if hv[v] {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", vertexFill))
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if he[e.Sorted()] {
			fmt.Fprintf(&buf, "  %d -- %d [color=%q, penwidth=%d];\n", e.U, e.V, edgeColor, edgePenWidth)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.U, e.V)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Render renders DOT source in the given format. FormatDOT returns the
// source unchanged.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	case FormatPNG:
		return RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a
// viewBox anchored at the origin so the image scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
