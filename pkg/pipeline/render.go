package pipeline

import (
	"context"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/render"
)

// =============================================================================
// Rendering
// =============================================================================

// RenderFromLayout renders a layout into every requested format.
// Returns a map from format name to artifact bytes.
func RenderFromLayout(ctx context.Context, layout graph.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, layout, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, layout graph.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := graph.MarshalLayout(layout)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "serializing layout")
		}
		return data, nil

	case FormatSVG:
		return renderSVG(ctx, layout, opts)

	case FormatPNG:
		svg, err := renderSVG(ctx, layout, opts)
		if err != nil {
			return nil, err
		}
		png, err := render.ToPNG(svg, opts.Scale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "converting to PNG")
		}
		return png, nil

	case FormatDOT:
		if !layout.IsDot() {
			return nil, errors.New(errors.ErrCodeUnsupported, "dot output requires the dot engine")
		}
		return []byte(layout.DOT), nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

func renderSVG(ctx context.Context, layout graph.Layout, opts Options) ([]byte, error) {
	if layout.IsDot() {
		svg, err := render.DOTToSVG(ctx, layout.DOT)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "rendering DOT")
		}
		return svg, nil
	}

	var svgOpts []render.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	return render.RenderSVG(layout, svgOpts...), nil
}
