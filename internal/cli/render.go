package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
)

// renderCommand creates the render command for generating output files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		opts       pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph or layout to SVG, PNG, DOT, or JSON",
		Long: `Render a graph or layout to SVG, PNG, DOT, or JSON.

The input can be either a layout.json file (produced by 'layout') or a raw
graph.json file. Raw graphs are stabilized first with the same parameters
the layout command uses.

Multiple formats can be requested at once with a comma-separated --format
list. Each format is written to <base>.<format>.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindLayoutDefaults(cmd, &opts, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "draw node labels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	// Layout flags apply when the input is a raw graph
	cmd.Flags().StringVarP(&opts.Engine, "engine", "e", "", "layout engine: force (default), dot")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height")
	cmd.Flags().Float64VarP(&opts.LinkLength, "link-length", "l", 0, "target link length")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 0, "simulation iteration budget")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for jiggle determinism")

	return cmd
}

// runRender resolves the input to a layout and writes every requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	layout, layoutHit, err := c.resolveLayout(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	base := basePath(output, input)
	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if len(opts.Formats) == 1 && output != "" {
			path = output
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(layout.Nodes), len(layout.Links), layoutHit || renderHit)

	return nil
}

// resolveLayout loads the input as a layout file, or stabilizes it when it
// is a raw graph file.
func (c *CLI) resolveLayout(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (graph.Layout, bool, error) {
	if layout, err := graph.ReadLayoutFile(input); err == nil {
		return layout, false, nil
	}

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return graph.Layout{}, false, fmt.Errorf("load %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Stabilizing layout...")
	spinner.Start()
	layout, hit, err := runner.StabilizeWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return graph.Layout{}, false, fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	return layout, hit, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if ValidOutputExt(ext) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// ValidOutputExt reports whether ext (including the dot) names a supported
// output format.
func ValidOutputExt(ext string) bool {
	return pipeline.ValidFormats[strings.TrimPrefix(ext, ".")]
}
