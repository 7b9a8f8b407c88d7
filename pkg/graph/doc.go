// Package graph provides serialization types for node-link graphs and layouts.
//
// This package defines the canonical wire format for forcegraph's data,
// used for JSON files, API responses, caching, and storage.
//
// # Architecture
//
// The package sits at the serialization boundary between the simulation
// engine and external formats:
//
//   - [Graph], [Layout]: Serialization types (this package)
//   - pkg/sim.Simulation: The force-directed layout engine consuming a Graph
//     and producing a Layout
//
// # Core Types
//
//   - [Graph]: Node-link input format (nodes + links)
//   - [Layout]: Positioned output format (force or dot engine)
//   - [Node], [Link]: Shared structural types
//   - [PositionedNode]: A node with resolved coordinates
//
// # Constants
//
// This package is the single source of truth for engine constants:
//
//	graph.EngineForce // "force"
//	graph.EngineDot   // "dot"
//
// # Graph Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "links": [{"source": "a", "target": "b"}]
//	}
//
// Nodes may carry optional initial positions ("x", "y"); nodes without them
// are seeded deterministically by the simulation.
package graph
