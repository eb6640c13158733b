// Package nodelink renders graphs as node-link diagrams using Graphviz.
//
// # Overview
//
// [ToDOT] produces an undirected Graphviz graph laid out with circo, which
// draws cycle graphs as rings. [Options] can highlight one T-set: its
// vertices are filled and its matching edges are drawn thick and coloured,
// while vertices adjacent to the T-set are left plain.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{
//	    HighlightVertices: ts.Vertices,
//	    HighlightEdges:    ts.Edges,
//	})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz
// in-process; no external binaries are needed.
package nodelink
