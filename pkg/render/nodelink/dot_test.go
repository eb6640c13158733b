package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/tsets/pkg/graph"
)

func TestToDOT(t *testing.T) {
	dot := ToDOT(graph.Cycle(4), Options{})

	for _, want := range []string{
		"graph G {",
		"layout=circo;",
		`0 [label="0"];`,
		`3 [label="3"];`,
		"0 -- 1;",
		"0 -- 3;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("undirected graph should not contain directed edges")
	}
	if strings.Contains(dot, "label=\"C") {
		t.Error("title should be omitted when empty")
	}
}

func TestToDOTHighlight(t *testing.T) {
	dot := ToDOT(graph.Cycle(6), Options{
		Title:             "T_0",
		Layout:            "neato",
		HighlightVertices: []int{0},
		HighlightEdges:    []graph.Edge{{U: 3, V: 2}},
	})

	for _, want := range []string{
		"layout=neato;",
		`label="T_0";`,
		`0 [label="0", fillcolor="` + vertexFill + `"];`,
		`2 -- 3 [color="` + edgeColor + `", penwidth=4];`,
		"3 -- 4;",
		`1 [label="1"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := graph.Complete(5)
	if ToDOT(g, Options{}) != ToDOT(g, Options{}) {
		t.Error("ToDOT output should be deterministic")
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	dot := ToDOT(graph.Path(2), Options{})
	out, err := Render(context.Background(), dot, FormatDOT)
	if err != nil {
		t.Fatalf("Render(dot): %v", err)
	}
	if string(out) != dot {
		t.Error("Render(dot) should return the source unchanged")
	}
}

func TestRenderUnsupported(t *testing.T) {
	if _, err := Render(context.Background(), "graph G {}", "pdf"); err == nil {
		t.Error("Render(pdf) should fail")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(graph.Cycle(5), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.80s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("unexpected header: %s", out)
	}
	if !strings.Contains(out, "<g/>") {
		t.Error("body should be preserved")
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
