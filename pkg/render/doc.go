// Package render turns stabilized layouts into visual outputs.
//
// # Overview
//
// Two rendering paths are provided, one per layout engine:
//
//   - Force layouts carry explicit node coordinates, so [RenderSVG] draws
//     them directly as circles connected by lines.
//   - DOT layouts delegate positioning to Graphviz: [ToDOT] emits the DOT
//     source and [DOTToSVG] renders it.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := render.RenderSVG(layout)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
