package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forcegraph/forcegraph/pkg/graph"
)

// validateCommand creates the validate command for checking graph files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [graph.json]",
		Short: "Check a graph file for structural problems",
		Long: `Check a graph file for structural problems.

Validation catches the mistakes that would otherwise fail at layout time:
empty or duplicate node IDs, and links referencing nodes that do not exist.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				printError("Graph is invalid")
				printDetail("%v", err)
				return fmt.Errorf("validate %s: %w", args[0], err)
			}

			printSuccess("Graph is valid")
			printStats(len(g.Nodes), len(g.Links), false)
			printNewline()
			printNextStep("Compute layout", "forcegraph layout "+args[0])
			return nil
		},
	}
}
