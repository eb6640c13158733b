package report

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/tsets/pkg/enum"
	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/pipeline"
)

// TextOptions configures WriteText.
type TextOptions struct {
	// Unfiltered also lists every T-set before the proximity filter.
	Unfiltered bool
}

// WriteText writes the human-readable listing of result to w.
func WriteText(w io.Writer, result *pipeline.Result, opts TextOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nIndependent sets V_i (|V_i| ≥ 1):\n")
	for i, vs := range result.IndependentSets {
		fmt.Fprintf(bw, "V_%d: %s\n", i, FormatVertices(vs))
	}

	fmt.Fprintf(bw, "\nMatchings E_i (|E_i| ≥ 1):\n")
	for j, es := range result.Matchings {
		fmt.Fprintf(bw, "E_%d: %s\n", j, FormatEdges(es))
	}

	if opts.Unfiltered {
		fmt.Fprintf(bw, "\nAll T_i = V_i ∪ E_i where |V_i| = |E_i| ≥ 1, disjoint and non-incident (%d total):\n", len(result.TSets))
		writeTSets(bw, result.TSets)
	}

	fmt.Fprintf(bw, "\nFiltered T_i = V_i ∪ E_i where |V_i| = |E_i| ≥ 1, disjoint and non-incident (%d total):\n", len(result.Filtered))
	writeTSets(bw, result.Filtered)

	return bw.Flush()
}

func writeTSets(w io.Writer, tsets []enum.TSet) {
	for k, ts := range tsets {
		fmt.Fprintf(w, "T_%d: V_%d ∪ E_%d = {Vertices: %s, Edges: %s}\n",
			k, ts.IndependentIndex, ts.MatchingIndex, FormatVertices(ts.Vertices), FormatEdges(ts.Edges))
	}
}

// FormatVertices formats vertices as a sorted list, e.g. "[0, 2]".
func FormatVertices(vs []int) string {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatEdges formats edges as a sorted list of sorted tuples,
// e.g. "[(0, 1), (2, 3)]".
func FormatEdges(es []graph.Edge) string {
	sorted := make([]graph.Edge, len(es))
	for i, e := range es {
		sorted[i] = e.Sorted()
	}
	slices.SortFunc(sorted, func(a, b graph.Edge) int {
		if a.U != b.U {
			return a.U - b.U
		}
		return a.V - b.V
	})
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
