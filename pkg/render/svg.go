package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/forcegraph/forcegraph/pkg/graph"
)

// Default visual parameters for force layout rendering.
const (
	defaultNodeRadius = 5.0
	defaultLinkColor  = "#999999"
	defaultNodeStroke = "#ffffff"
)

// groupPalette maps node groups to fill colors, cycling when a layout has
// more groups than colors. The colors follow the d3 category scheme common
// in force-directed visualizations.
var groupPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// SVGOption configures force layout rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	radius     float64
	background string
	labels     bool
}

// WithNodeRadius sets the circle radius for nodes.
func WithNodeRadius(r float64) SVGOption { return func(s *svgRenderer) { s.radius = r } }

// WithBackground sets a solid background color. Default is transparent.
func WithBackground(color string) SVGOption { return func(s *svgRenderer) { s.background = color } }

// WithLabels draws node labels next to each circle.
func WithLabels() SVGOption { return func(s *svgRenderer) { s.labels = true } }

// RenderSVG draws a force layout as an SVG document: one line per link,
// one circle per node, colored by group.
//
// The viewBox matches the viewport the layout was stabilized in, so
// coordinates map one-to-one.
func RenderSVG(l graph.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{radius: defaultNodeRadius}
	for _, opt := range opts {
		opt(&r)
	}

	positions := make(map[string]graph.PositionedNode, len(l.Nodes))
	for _, n := range l.Nodes {
		positions[n.ID] = n
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	fmt.Fprintf(&buf, `  <g stroke="%s" stroke-opacity="0.6">`+"\n", defaultLinkColor)
	for _, link := range l.Links {
		src, okS := positions[link.Source]
		dst, okT := positions[link.Target]
		if !okS || !okT {
			continue
		}
		width := 1.0
		if link.Value > 0 {
			width = link.Value
		}
		fmt.Fprintf(&buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="%.1f"/>`+"\n",
			src.X, src.Y, dst.X, dst.Y, width)
	}
	buf.WriteString("  </g>\n")

	groups := groupColors(l.Nodes)
	fmt.Fprintf(&buf, `  <g stroke="%s" stroke-width="1.5">`+"\n", defaultNodeStroke)
	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, `    <circle id="node-%s" cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
			html.EscapeString(n.ID), n.X, n.Y, r.radius, groups[n.Group])
	}
	buf.WriteString("  </g>\n")

	if r.labels {
		buf.WriteString(`  <g font-family="sans-serif" font-size="10">` + "\n")
		for _, n := range l.Nodes {
			fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f">%s</text>`+"\n",
				n.X+r.radius+2, n.Y+3, html.EscapeString(nodeLabel(n)))
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func nodeLabel(n graph.PositionedNode) string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// groupColors assigns a palette color to each distinct group, in order of
// first appearance so the assignment is deterministic.
func groupColors(nodes []graph.PositionedNode) map[string]string {
	colors := make(map[string]string)
	for _, n := range nodes {
		if _, ok := colors[n.Group]; !ok {
			colors[n.Group] = groupPalette[len(colors)%len(groupPalette)]
		}
	}
	return colors
}
