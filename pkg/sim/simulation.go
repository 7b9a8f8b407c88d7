package sim

import (
	"math"

	"github.com/forcegraph/forcegraph/pkg/graph"
)

// initialRadius and initialAngle parameterize the phyllotaxis spiral used to
// seed nodes without initial positions: node i is placed at radius
// initialRadius·√(0.5+i) and angle i·initialAngle (the golden angle) around
// the viewport center. The pattern spreads nodes evenly with no two nodes
// coincident, which keeps the first repulsion ticks well conditioned.
const initialRadius = 10.0

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Simulation advances a particle system under the combined layout forces.
//
// A Simulation is single-threaded: Tick must not be called concurrently, and
// the input node set must not be overlapped by another running simulation.
// Most callers want the one-shot [Stabilize] instead; Simulation exists for
// incremental consumers such as tick-by-tick animation.
type Simulation struct {
	opts      Options
	src       graph.Graph
	particles []*Particle
	forces    []Force

	alpha      float64
	alphaDecay float64
	ticks      int
}

// New validates the graph and options and builds a ready-to-tick simulation.
//
// Validation happens before any state is allocated: a link referencing an
// absent node returns [MalformedGraphError], and a non-positive or non-finite
// parameter returns [InvalidParameterError]. The input graph is copied, never
// mutated.
func New(g graph.Graph, opts Options) (*Simulation, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}

	edges := make([][2]int, len(g.Links))
	for i, l := range g.Links {
		si, ok := index[l.Source]
		if !ok {
			return nil, &MalformedGraphError{Source: l.Source, Target: l.Target, Missing: l.Source}
		}
		ti, ok := index[l.Target]
		if !ok {
			return nil, &MalformedGraphError{Source: l.Source, Target: l.Target, Missing: l.Target}
		}
		edges[i] = [2]int{si, ti}
	}

	s := &Simulation{
		opts: opts,
		src:  g,
		// Decay alpha from 1 to alphaMin over exactly the iteration budget,
		// so shorter budgets cool faster rather than stopping hot.
		alpha:      1,
		alphaDecay: 1 - math.Pow(alphaMin, 1/float64(opts.Iterations)),
	}

	s.particles = seedParticles(g.Nodes, opts.Width/2, opts.Height/2)

	random := newLCG(opts.Seed)
	s.forces = []Force{
		NewManyBody(opts.Repulsion),
		NewLinkForce(edges, opts.LinkLength, opts.LinkStrength),
		NewCenter(opts.Width/2, opts.Height/2, opts.CenterStrength),
	}
	for _, f := range s.forces {
		f.Initialize(s.particles, random.float64)
	}

	return s, nil
}

// seedParticles builds the particle set, placing nodes without an initial
// position on a deterministic phyllotaxis spiral around (cx, cy).
func seedParticles(nodes []graph.Node, cx, cy float64) []*Particle {
	particles := make([]*Particle, len(nodes))
	for i, n := range nodes {
		p := &Particle{ID: n.ID}
		if n.HasPosition() {
			p.X, p.Y = *n.X, *n.Y
		} else {
			radius := initialRadius * math.Sqrt(0.5+float64(i))
			angle := float64(i) * initialAngle
			p.X = cx + radius*math.Cos(angle)
			p.Y = cy + radius*math.Sin(angle)
		}
		particles[i] = p
	}
	return particles
}

// Tick advances the simulation one step: alpha cools, every force applies,
// and velocities integrate into positions under velocity decay.
func (s *Simulation) Tick() {
	s.alpha += (0 - s.alpha) * s.alphaDecay

	for _, f := range s.forces {
		f.Apply(s.alpha)
	}

	decay := 1 - s.opts.VelocityDecay
	for _, p := range s.particles {
		p.VX *= decay
		p.X += p.VX
		p.VY *= decay
		p.Y += p.VY
	}

	s.ticks++
}

// Alpha returns the current cooling factor.
func (s *Simulation) Alpha() float64 { return s.alpha }

// Ticks returns the number of ticks executed so far.
func (s *Simulation) Ticks() int { return s.ticks }

// Options returns the validated options the simulation was built with.
func (s *Simulation) Options() Options { return s.opts }

// Remaining returns the number of ticks left in the configured budget.
func (s *Simulation) Remaining() int {
	if r := s.opts.Iterations - s.ticks; r > 0 {
		return r
	}
	return 0
}

// Particles returns a snapshot copy of the current particle state, safe to
// read while the caller decides whether to keep ticking.
func (s *Simulation) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	for i, p := range s.particles {
		out[i] = *p
	}
	return out
}

// Layout exports the current positions as a fresh [graph.Layout]. Node
// identities, labels and the link set are carried over from the input graph.
func (s *Simulation) Layout() graph.Layout {
	nodes := make([]graph.PositionedNode, len(s.particles))
	for i, p := range s.particles {
		src := s.src.Nodes[i]
		nodes[i] = graph.PositionedNode{
			ID:    p.ID,
			Label: src.Label,
			Group: src.Group,
			X:     p.X,
			Y:     p.Y,
		}
	}

	links := make([]graph.Link, len(s.src.Links))
	copy(links, s.src.Links)

	return graph.Layout{
		Engine:     graph.EngineForce,
		Width:      s.opts.Width,
		Height:     s.opts.Height,
		LinkLength: s.opts.LinkLength,
		Iterations: s.opts.Iterations,
		Seed:       s.opts.Seed,
		Nodes:      nodes,
		Links:      links,
	}
}

// Stabilize runs a complete one-shot layout pass: validate, seed, advance
// exactly opts.Iterations ticks, and return the positioned graph. The
// simulation is stopped when the budget is exhausted - it never keeps
// running on a timer.
func Stabilize(g graph.Graph, opts Options) (graph.Layout, error) {
	s, err := New(g, opts)
	if err != nil {
		return graph.Layout{}, err
	}
	for s.Remaining() > 0 {
		s.Tick()
	}
	return s.Layout(), nil
}
