package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/forcegraph/forcegraph/pkg/graph"
)

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Detailed includes group and metadata in node labels.
	// When false, only the display label is shown.
	Detailed bool
}

// ToDOT converts a graph to Graphviz DOT format. Links are undirected
// springs in the force engine, so the DOT output uses an undirected graph.
// The resulting DOT string can be rendered with [DOTToSVG] or [DOTToPNG].
func ToDOT(g graph.Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := nodeAttrs(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, l := range g.Links {
		if l.Value > 0 && l.Value != 1 {
			fmt.Fprintf(&buf, "  %q -- %q [weight=%g];\n", l.Source, l.Target, l.Value)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", l.Source, l.Target)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node, detailed bool) []string {
	label := n.DisplayLabel()
	if detailed && n.Group != "" {
		label += "\n" + n.Group
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Group != "" {
		attrs = append(attrs, fmt.Sprintf("colorscheme=%q", "set19"), fmt.Sprintf("fillcolor=%d", groupIndex(n.Group)))
	}
	return attrs
}

// groupIndex maps a group name to a 1-based color index in the set19
// Brewer scheme. Deterministic so repeated renders color identically.
func groupIndex(group string) int {
	sum := 0
	for _, r := range group {
		sum += int(r)
	}
	return sum%9 + 1
}

// DOTToSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or conversion with [ToPDF] or [ToPNG].
func DOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the viewBox starts
// at the origin and explicit pixel dimensions are set.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// DOTToPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [DOTToSVG] and [ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func DOTToPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := DOTToSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return ToPNG(svg, scale)
}
