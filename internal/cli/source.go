package cli

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/graph"
)

// graphSource holds the flags that select the input graph.
type graphSource struct {
	vertices int    // -n
	file     string // --graph
	kind     string // --kind
	prompt   bool   // ask for -n on a terminal when neither flag is given
}

// addGraphFlags registers the graph selection flags on cmd.
func addGraphFlags(cmd *cobra.Command, src *graphSource) {
	src.kind = string(graph.KindCycle)
	src.prompt = true
	cmd.Flags().IntVarP(&src.vertices, "vertices", "n", 0, "number of vertices of the generated graph")
	cmd.Flags().StringVar(&src.file, "graph", "", "read the graph from a JSON file instead of generating one")
	cmd.Flags().StringVar(&src.kind, "kind", src.kind, "generated graph kind: cycle (default), path, complete, empty")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return graph.Kinds(), cobra.ShellCompDirectiveNoFileComp
	})
}

// resolve loads or builds the graph described by the flags.
func (s *graphSource) resolve(ctx context.Context, cmd *cobra.Command) (*graph.Graph, error) {
	nSet := cmd.Flags().Changed("vertices")
	if s.file != "" && nSet {
		return nil, errors.New(errors.ErrCodeInvalidInput, "use either --graph or -n, not both")
	}
	if s.file != "" {
		return readGraph(s.file)
	}

	if err := errors.ValidateChoice(errors.ErrCodeInvalidKind, "graph kind", s.kind, graph.Kinds()); err != nil {
		return nil, err
	}
	n := s.vertices
	if !nSet {
		if !s.prompt || !stdinIsTerminal() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "vertex count required: pass -n or --graph")
		}
		var err error
		if n, err = promptVertexCount(ctx, s.kind); err != nil {
			return nil, err
		}
	}
	if err := errors.ValidateVertexCount(n); err != nil {
		return nil, err
	}
	return graph.Build(graph.Kind(s.kind), n)
}

func readGraph(path string) (*graph.Graph, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	g, err := graph.ReadGraphFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid graph file %s", path)
	}
	return g, nil
}

func stdinIsTerminal() bool { return isTerminal(os.Stdin) }

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
