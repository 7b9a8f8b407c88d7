package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
)

// layoutCommand creates the layout command for stabilizing graphs.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		opts    pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a stabilized layout from a graph",
		Long: `Compute a stabilized layout from a graph.

The layout command takes a graph.json file and runs the force simulation
until the iteration budget is exhausted. The output is a layout.json file
with final node positions that can be rendered using the 'render' command.

Layouts are deterministic: the same graph and parameters always produce
the same positions. Results are cached locally for faster subsequent runs.

The dot engine (-e dot) skips the simulation and emits Graphviz DOT source
instead, deferring positioning to Graphviz at render time.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindLayoutDefaults(cmd, &opts, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "layout engine: force (default), dot")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height")
	cmd.Flags().Float64VarP(&opts.LinkLength, "link-length", "l", 0, "target link length")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 0, "simulation iteration budget")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for jiggle determinism")

	return cmd
}

// bindLayoutDefaults fills unset layout flags from the loaded config.
func bindLayoutDefaults(cmd *cobra.Command, opts *pipeline.Options, c *CLI) {
	defaults := c.pipelineOptions()
	if !cmd.Flags().Changed("width") {
		opts.Width = defaults.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.Height = defaults.Height
	}
	if !cmd.Flags().Changed("link-length") {
		opts.LinkLength = defaults.LinkLength
	}
	if !cmd.Flags().Changed("iterations") {
		opts.Iterations = defaults.Iterations
	}
	if !cmd.Flags().Changed("seed") {
		opts.Seed = defaults.Seed
	}
}

// runLayout loads the graph, stabilizes it, and writes the layout file.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Stabilizing %s layout...", opts.Engine))
	spinner.Start()

	layout, cacheHit, err := runner.StabilizeWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := graph.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(g.Nodes), len(g.Links), cacheHit)
	printNewline()
	printNextStep("Render", "forcegraph render "+outputPath)

	return nil
}
