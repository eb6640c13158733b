package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tsets/pkg/errors"
	"github.com/matzehuels/tsets/pkg/graph"
)

// graphCommand creates the graph command, which writes a generated graph as
// JSON so it can be edited and passed back with --graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		src    graphSource
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Write a generated graph as JSON",
		Example: `  tsets graph -n 6 -o c6.json
  tsets graph -n 5 --kind path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := src.resolve(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			if output == "" {
				return graph.WriteGraph(g, cmd.OutOrStdout())
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			if err := graph.WriteGraphFile(g, output); err != nil {
				return fmt.Errorf("write graph: %w", err)
			}
			printSuccess("Wrote %s", g)
			printFile(output)
			return nil
		},
	}

	addGraphFlags(cmd, &src)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
