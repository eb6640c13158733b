package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/pipeline"
	"github.com/matzehuels/tsets/pkg/render/nodelink"
)

// visualizeOpts holds the command-line flags for the visualize command.
type visualizeOpts struct {
	source  graphSource
	tset    int    // filtered T-set to highlight, pipeline.NoHighlight for none
	format  string // svg, png or dot
	output  string // output file
	layout  string // Graphviz layout engine
	noCache bool
}

// visualizeCommand creates the visualize command for drawing the graph.
func (c *CLI) visualizeCommand() *cobra.Command {
	opts := visualizeOpts{
		tset:   pipeline.NoHighlight,
		format: nodelink.FormatSVG,
		layout: nodelink.DefaultLayout,
	}

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Draw the graph, optionally highlighting a T-set",
		Long: `Draw the graph with Graphviz.

With --tset K the vertices and edges of filtered T-set K (as numbered by
'enumerate') are highlighted. DOT output goes to stdout unless -o is given;
SVG and PNG default to graph.<format> or tset-K.<format>.`,
		Example: `  tsets visualize -n 6
  tsets visualize -n 6 --tset 3 -f png -o t3.png
  tsets visualize -n 5 -f dot | dot -Tpdf > c5.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), cmd, &opts)
		},
	}

	addGraphFlags(cmd, &opts.source)
	cmd.Flags().IntVar(&opts.tset, "tset", opts.tset, "index of the filtered T-set to highlight (-1 for none)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "Graphviz layout engine (circo, neato, dot, ...)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nodelink.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, cmd *cobra.Command, opts *visualizeOpts) error {
	if opts.tset < pipeline.NoHighlight {
		return errors.New(errors.ErrCodeInvalidInput, "T-set index must be >= 0, got %d", opts.tset)
	}
	g, err := opts.source.resolve(ctx, cmd)
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	start := time.Now()

	result := &pipeline.Result{Graph: g}
	if opts.tset != pipeline.NoHighlight {
		runner := c.newRunner(ctx, opts.noCache)
		defer runner.Close()
		result, err = runner.Execute(ctx, pipeline.Options{
			Graph:       g,
			Workers:     c.Config.Workers,
			MaxVertices: c.Config.MaxVertices,
			MaxEdges:    c.Config.MaxEdges,
			Logger:      logger,
		})
		if err != nil {
			return err
		}
	}

	data, err := pipeline.Render(ctx, result, pipeline.RenderOptions{
		Format:    opts.format,
		Highlight: opts.tset,
		Layout:    opts.layout,
	})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" && opts.format == nodelink.FormatDOT {
		_, err := os.Stdout.Write(data)
		return err
	}
	if output == "" {
		output = defaultRenderName(opts.tset, opts.format)
	}
	if err := errors.ValidatePath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	logRendered(logger, g, opts.format, output, opts.tset, start)
	printSuccess("Rendered %s", opts.format)
	printFile(output)
	return nil
}

func defaultRenderName(tset int, format string) string {
	if tset == pipeline.NoHighlight {
		return "graph." + format
	}
	return fmt.Sprintf("tset-%d.%s", tset, format)
}
