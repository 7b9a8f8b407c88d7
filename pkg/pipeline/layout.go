package pipeline

import (
	stderrors "errors"

	"github.com/forcegraph/forcegraph/pkg/errors"
	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/render"
	"github.com/forcegraph/forcegraph/pkg/sim"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes a layout for any engine.
// This is the unified entry point for producing serializable layout data.
//
// The force engine runs the physics simulation and records final positions.
// The dot engine emits Graphviz DOT source instead and defers positioning
// to Graphviz at render time.
func GenerateLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	if opts.IsDot() {
		return generateDotLayout(g, opts)
	}
	return generateForceLayout(g, opts)
}

// generateForceLayout stabilizes the graph with the force simulation.
func generateForceLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	if err := g.Validate(); err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeMalformedGraph, err, "validating graph")
	}

	layout, err := sim.Stabilize(g, opts.SimOptions())
	if err != nil {
		return graph.Layout{}, codedSimError(err)
	}
	return layout, nil
}

// generateDotLayout produces a DOT layout. Positions are left to Graphviz,
// but input validation matches the force engine so both reject the same
// malformed graphs.
func generateDotLayout(g graph.Graph, opts Options) (graph.Layout, error) {
	if err := g.Validate(); err != nil {
		return graph.Layout{}, errors.Wrap(errors.ErrCodeMalformedGraph, err, "validating graph")
	}

	return graph.Layout{
		Engine: graph.EngineDot,
		Width:  opts.Width,
		Height: opts.Height,
		Links:  append([]graph.Link(nil), g.Links...),
		DOT:    render.ToDOT(g, render.DOTOptions{Detailed: opts.Labels}),
	}, nil
}

// codedSimError attaches error codes to simulation errors so callers can
// map them to exit codes and HTTP statuses.
func codedSimError(err error) error {
	var malformed *sim.MalformedGraphError
	if stderrors.As(err, &malformed) {
		return errors.Wrap(errors.ErrCodeMalformedGraph, err, "validating graph")
	}
	var invalid *sim.InvalidParameterError
	if stderrors.As(err, &invalid) {
		return errors.Wrap(errors.ErrCodeInvalidParameter, err, "validating parameters")
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "stabilizing layout")
}
