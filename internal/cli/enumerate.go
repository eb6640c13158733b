package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/pipeline"
	"github.com/matzehuels/tsets/pkg/report"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var reportFormats = []string{formatText, formatJSON}

// enumerateOpts holds the command-line flags for the enumerate command.
type enumerateOpts struct {
	source      graphSource
	format      string // report format: text or json
	output      string // output file, stdout when empty
	workers     int    // composer workers
	maxVertices int    // vertex guard, negative disables
	maxEdges    int    // edge guard, negative disables
	noCache     bool   // bypass the result cache entirely
	refresh     bool   // recompute but still store
	unfiltered  bool   // also list every T-set
}

// enumerateCommand creates the enumerate command.
func (c *CLI) enumerateCommand() *cobra.Command {
	opts := enumerateOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List independent sets, matchings and filtered T-sets",
		Long: `List independent sets, matchings and filtered T-sets of a graph.

The graph is a cycle on -n vertices unless --kind or --graph says otherwise.
When neither -n nor --graph is given on an interactive terminal, the vertex
count is asked for.

A T-set pairs an independent set V_i with a matching E_j of the same size
that share no vertex and are non-incident: no vertex of V_i is adjacent to an
endpoint of an edge in E_j. The listing keeps the T-sets that have another
T-set whose size differs by at most one (equal sizes included).`,
		Example: `  tsets enumerate -n 6
  tsets enumerate -n 8 --format json -o c8.json
  tsets enumerate --graph my-graph.json --unfiltered`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", opts.format, reportFormats); err != nil {
				return err
			}
			c.applyConfigDefaults(cmd, &opts)
			return c.runEnumerate(cmd.Context(), cmd, &opts)
		},
	}

	addGraphFlags(cmd, &opts.source)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "report format: text (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.workers, "workers", pipeline.DefaultWorkers, "composer workers")
	cmd.Flags().IntVar(&opts.maxVertices, "max-vertices", pipeline.DefaultMaxVertices, "refuse graphs with more vertices (negative disables)")
	cmd.Flags().IntVar(&opts.maxEdges, "max-edges", pipeline.DefaultMaxEdges, "refuse graphs with more edges (negative disables)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.unfiltered, "unfiltered", false, "also list all T-sets before filtering")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return reportFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// applyConfigDefaults fills flags the user did not set from the config file.
func (c *CLI) applyConfigDefaults(cmd *cobra.Command, opts *enumerateOpts) {
	if !cmd.Flags().Changed("workers") {
		opts.workers = c.Config.Workers
	}
	if !cmd.Flags().Changed("max-vertices") {
		opts.maxVertices = c.Config.MaxVertices
	}
	if !cmd.Flags().Changed("max-edges") {
		opts.maxEdges = c.Config.MaxEdges
	}
}

func (c *CLI) runEnumerate(ctx context.Context, cmd *cobra.Command, opts *enumerateOpts) error {
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	g, err := opts.source.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	var result *pipeline.Result
	execute := func() error {
		var err error
		result, err = runner.Execute(ctx, pipeline.Options{
			Graph:       g,
			Workers:     opts.workers,
			MaxVertices: opts.maxVertices,
			MaxEdges:    opts.maxEdges,
			Refresh:     opts.refresh,
			Logger:      loggerFromContext(ctx),
		})
		return err
	}
	// The report owns stdout, so the spinner only runs when writing to a file.
	if status := cmd.ErrOrStderr(); opts.output != "" && isTerminal(status) {
		err = withStageSpinner(ctx, status, g.String(), execute)
	} else {
		err = execute()
	}
	if err != nil {
		return err
	}

	if err := writeReport(opts.output, opts.format, result, opts.unfiltered); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Found %d filtered T-sets", len(result.Filtered))
		printFile(opts.output)
		printStats(result.Stats.VertexCount, result.Stats.EdgeCount, len(result.Filtered), result.CacheHit)
		if len(result.Filtered) > 0 && opts.source.file == "" {
			printNextStep("Draw the first one", fmt.Sprintf("tsets visualize --kind %s -n %d --tset 0", opts.source.kind, result.Stats.VertexCount))
		}
	}
	return nil
}

func writeReport(path, format string, result *pipeline.Result, unfiltered bool) error {
	w, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	switch format {
	case formatJSON:
		err = report.WriteJSON(w, result)
	default:
		err = report.WriteText(w, result, report.TextOptions{Unfiltered: unfiltered})
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
