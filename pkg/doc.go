// Package pkg provides the core libraries for forcegraph layout computation.
//
// # Overview
//
// Forcegraph places the nodes of an undirected graph on a fixed viewport by
// running a force-directed simulation: linked nodes attract, all nodes repel,
// and the whole system drifts toward the viewport center. The pkg directory
// is organized into five main areas:
//
//  1. [graph] - Serialization types for graphs and positioned layouts
//  2. [sim] - The force simulation engine (forces, cooling, stabilization)
//  3. [render] - Output formats (SVG, DOT, PDF, PNG)
//  4. [pipeline] - Orchestration (validate → stabilize → render)
//  5. [cache], [store] - Infrastructure (layout caching, layout persistence)
//
// # Architecture
//
// The typical data flow through forcegraph:
//
//	Graph JSON (nodes + links)
//	         ↓
//	    [graph] package (decode + validate)
//	         ↓
//	    [sim] package (force simulation)
//	         ↓
//	    [render] package (SVG / DOT / PDF / PNG)
//	         ↓
//	    files, HTTP responses, cached artifacts
//
// # Quick Start
//
// Stabilize a graph and render it to SVG:
//
//	import (
//	    "github.com/forcegraph/forcegraph/pkg/graph"
//	    "github.com/forcegraph/forcegraph/pkg/render"
//	    "github.com/forcegraph/forcegraph/pkg/sim"
//	)
//
//	// 1. Load the graph
//	g, _ := graph.ReadGraphFile("graph.json")
//
//	// 2. Run the simulation
//	layout, _ := sim.Stabilize(g, sim.Options{
//	    Width:  800,
//	    Height: 600,
//	})
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(layout)
//
// # Main Packages
//
// [sim] - Force simulation with three forces (link springs, many-body
// repulsion, centering), deterministic phyllotaxis seeding, and a fixed
// iteration budget with alpha cooling.
//
// [graph] - Serialization types for graphs (JSON node-link format) and
// positioned layouts, plus structural validation.
//
// [render] - SVG rendering for positioned layouts, DOT generation and
// Graphviz rendering for the dot engine, and PDF/PNG conversion.
//
// [pipeline] - Complete layout pipeline (validate → stabilize → render)
// used by CLI and server. Ensures consistent behavior across entry points.
//
// [cache] - Content-addressed caching of layouts and rendered artifacts.
// FileCache for the CLI, RedisCache for the server, NullCache for testing.
//
// [store] - Persistent layout storage for the HTTP API. MemoryStore for
// development and testing, MongoStore for production.
//
// [errors] - Structured errors with stable machine-readable codes.
//
// [observability] - Pluggable hooks for simulation, cache, and server events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sim/...      # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/graph
// [sim]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/sim
// [render]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/cache
// [store]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/store
// [errors]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/forcegraph/forcegraph/pkg/observability
package pkg
