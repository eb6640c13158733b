// Package cli implements the tsets command-line interface.
//
// The CLI builds a graph (a cycle on n vertices by default, or a JSON graph
// file), runs the enumeration pipeline and prints the listing, renders the
// graph with Graphviz, and manages the result cache. It is built on cobra
// and logs with charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - enumerate: List independent sets, matchings and filtered T-sets
//   - visualize: Draw the graph, optionally highlighting one T-set
//   - graph: Write a generated graph as editable JSON
//   - cache: Clear the result cache or print its location
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline stage timings and cache events. Lines logged by a command
// carry its path as the "cmd" key.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tsets/pkg/graph"
	"github.com/matzehuels/tsets/pkg/pipeline"
)

// newLogger returns the CLI logger: timestamps to the hundredth of a second,
// filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// commandLogger tags l with the subcommand path, e.g. "cache clear".
func commandLogger(l *log.Logger, cmd *cobra.Command) *log.Logger {
	path := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name())
	path = strings.TrimSpace(path)
	if path == "" {
		return l
	}
	return l.With("cmd", path)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or log.Default() outside a
// command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logRendered reports a drawing of g written to path, timed from start. tset
// is omitted when it is pipeline.NoHighlight.
func logRendered(l *log.Logger, g *graph.Graph, format, path string, tset int, start time.Time) {
	kv := []any{"graph", g.String(), "format", format, "path", path}
	if tset != pipeline.NoHighlight {
		kv = append(kv, "tset", tset)
	}
	kv = append(kv, "elapsed", time.Since(start).Round(time.Millisecond))
	l.Info("rendered", kv...)
}
