// Package sim implements the force-directed layout simulation.
//
// The simulation assigns 2D positions to graph nodes by integrating three
// composable forces over a fixed number of discrete ticks:
//
//   - [ManyBody]: pairwise repulsion pushing all nodes apart
//   - [LinkForce]: springs pulling linked nodes toward a target separation
//   - [Center]: translation keeping the node centroid on the viewport center
//
// # Lifecycle
//
// A simulation is a one-shot layout pass, not a live animation. [Stabilize]
// validates its inputs, runs exactly Options.Iterations ticks, and returns a
// fresh [graph.Layout] - the input graph is never mutated. For incremental
// use (e.g. animating the cooling process), create a [Simulation] with [New]
// and call [Simulation.Tick] directly.
//
// # Determinism
//
// Nodes without initial positions are seeded on a phyllotaxis spiral around
// the viewport center, and all degenerate-distance perturbations come from a
// seeded linear congruential generator. Given equal inputs and an equal seed,
// the simulation produces identical output on a given platform. Bit-exact
// reproducibility across platforms is not guaranteed - the floating-point
// force arithmetic is not specified bit-for-bit.
//
// # Cost
//
// Each tick costs O(V² + E): repulsion is evaluated for every node pair and
// springs for every link. Keep iteration budgets small for large graphs.
package sim
