package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/forcegraph/forcegraph/pkg/graph"
)

func chainGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Links: []graph.Link{
			{Source: "a", Target: "b"},
			{Source: "b", Target: "c"},
		},
	}
}

func defaultOpts() Options {
	return Options{
		Width:      200,
		Height:     200,
		LinkLength: 30,
		Iterations: 100,
	}
}

func distance(a, b graph.PositionedNode) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// linkError sums |distance - rest length| over all links.
func linkError(l graph.Layout, rest float64) float64 {
	var total float64
	for _, link := range l.Links {
		s, _ := l.Node(link.Source)
		t, _ := l.Node(link.Target)
		total += math.Abs(distance(s, t) - rest)
	}
	return total
}

func centroid(l graph.Layout) (float64, float64) {
	var sx, sy float64
	for _, n := range l.Nodes {
		sx += n.X
		sy += n.Y
	}
	n := float64(len(l.Nodes))
	return sx / n, sy / n
}

func TestStabilizeCompleteness(t *testing.T) {
	g := chainGraph()
	l, err := Stabilize(g, defaultOpts())
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}

	if len(l.Nodes) != len(g.Nodes) {
		t.Fatalf("nodes = %d, want %d", len(l.Nodes), len(g.Nodes))
	}
	if len(l.Links) != len(g.Links) {
		t.Fatalf("links = %d, want %d", len(l.Links), len(g.Links))
	}
	for i, n := range g.Nodes {
		if l.Nodes[i].ID != n.ID {
			t.Errorf("node %d = %q, want %q (identity order must be preserved)", i, l.Nodes[i].ID, n.ID)
		}
	}
	for _, link := range l.Links {
		if _, ok := l.Node(link.Source); !ok {
			t.Errorf("link source %q unresolvable in output", link.Source)
		}
		if _, ok := l.Node(link.Target); !ok {
			t.Errorf("link target %q unresolvable in output", link.Target)
		}
	}
}

func TestStabilizeFiniteness(t *testing.T) {
	graphs := map[string]graph.Graph{
		"Chain":    chainGraph(),
		"Isolated": {Nodes: []graph.Node{{ID: "solo"}}},
		"Ring": {
			Nodes: []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
			Links: []graph.Link{
				{Source: "a", Target: "b"},
				{Source: "b", Target: "c"},
				{Source: "c", Target: "d"},
				{Source: "d", Target: "a"},
			},
		},
		"CoincidentStart": {
			Nodes: []graph.Node{
				{ID: "a", X: ptr(50), Y: ptr(50)},
				{ID: "b", X: ptr(50), Y: ptr(50)},
			},
			Links: []graph.Link{{Source: "a", Target: "b"}},
		},
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			l, err := Stabilize(g, defaultOpts())
			if err != nil {
				t.Fatalf("Stabilize: %v", err)
			}
			for _, n := range l.Nodes {
				if math.IsNaN(n.X) || math.IsInf(n.X, 0) || math.IsNaN(n.Y) || math.IsInf(n.Y, 0) {
					t.Errorf("node %s = (%v, %v), want finite coordinates", n.ID, n.X, n.Y)
				}
			}
		})
	}
}

func TestStabilizeDoesNotMutateInput(t *testing.T) {
	x, y := 10.0, 20.0
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "a", X: &x, Y: &y}, {ID: "b"}},
		Links: []graph.Link{{Source: "a", Target: "b"}},
	}

	if _, err := Stabilize(g, defaultOpts()); err != nil {
		t.Fatalf("Stabilize: %v", err)
	}

	if x != 10 || y != 20 {
		t.Errorf("input positions mutated to (%v, %v)", x, y)
	}
	if g.Nodes[1].X != nil {
		t.Error("input node gained a position pointer")
	}
}

func TestStabilizeRejectsMalformedGraph(t *testing.T) {
	tests := []struct {
		name    string
		links   []graph.Link
		missing string
	}{
		{"MissingTarget", []graph.Link{{Source: "a", Target: "ghost"}}, "ghost"},
		{"MissingSource", []graph.Link{{Source: "phantom", Target: "a"}}, "phantom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := 1.0, 2.0
			g := graph.Graph{
				Nodes: []graph.Node{{ID: "a", X: &x, Y: &y}},
				Links: tt.links,
			}

			_, err := Stabilize(g, defaultOpts())
			var mg *MalformedGraphError
			if !errors.As(err, &mg) {
				t.Fatalf("err = %v, want MalformedGraphError", err)
			}
			if mg.Missing != tt.missing {
				t.Errorf("missing = %q, want %q", mg.Missing, tt.missing)
			}
			// Validation must reject before any mutation.
			if x != 1 || y != 2 {
				t.Errorf("node position mutated to (%v, %v) despite rejection", x, y)
			}
		})
	}
}

func TestStabilizeRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		param  string
	}{
		{"ZeroIterations", func(o *Options) { o.Iterations = 0 }, "iterations"},
		{"NegativeIterations", func(o *Options) { o.Iterations = -5 }, "iterations"},
		{"NegativeWidth", func(o *Options) { o.Width = -100 }, "width"},
		{"ZeroHeight", func(o *Options) { o.Height = 0 }, "height"},
		{"NegativeLinkLength", func(o *Options) { o.LinkLength = -30 }, "link length"},
		{"NaNWidth", func(o *Options) { o.Width = math.NaN() }, "width"},
		{"InfHeight", func(o *Options) { o.Height = math.Inf(1) }, "height"},
		{"BadVelocityDecay", func(o *Options) { o.VelocityDecay = 1.5 }, "velocity decay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOpts()
			tt.mutate(&opts)

			_, err := Stabilize(chainGraph(), opts)
			var ip *InvalidParameterError
			if !errors.As(err, &ip) {
				t.Fatalf("err = %v, want InvalidParameterError", err)
			}
			if ip.Param != tt.param {
				t.Errorf("param = %q, want %q", ip.Param, tt.param)
			}
		})
	}
}

// Three nodes in a chain with rest length 30: linked pairs should settle in a
// tolerance band around the rest length and the centroid should sit inside
// the viewport.
func TestStabilizeChainScenario(t *testing.T) {
	l, err := Stabilize(chainGraph(), defaultOpts())
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}

	for _, link := range l.Links {
		s, _ := l.Node(link.Source)
		tn, _ := l.Node(link.Target)
		d := distance(s, tn)
		if d < 20 || d > 45 {
			t.Errorf("link %s-%s distance = %.2f, want within [20, 45]", link.Source, link.Target, d)
		}
	}

	cx, cy := centroid(l)
	if cx < 0 || cx > 200 || cy < 0 || cy > 200 {
		t.Errorf("centroid = (%.2f, %.2f), want within viewport [0, 200]", cx, cy)
	}
}

// A single isolated node has no spring or repulsion partner, so the
// centering force places it on the viewport center.
func TestStabilizeIsolatedNode(t *testing.T) {
	g := graph.Graph{Nodes: []graph.Node{{ID: "solo"}}}

	l, err := Stabilize(g, defaultOpts())
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}

	n := l.Nodes[0]
	if math.Abs(n.X-100) > 1 || math.Abs(n.Y-100) > 1 {
		t.Errorf("isolated node = (%.2f, %.2f), want near (100, 100)", n.X, n.Y)
	}
}

// The centroid after stabilization must be closer to the viewport center
// than the centroid of the maximally dispersed seed ring.
func TestStabilizeCenteringTendency(t *testing.T) {
	corners := []struct{ x, y float64 }{
		{0, 0}, {200, 0}, {0, 200}, {200, 200},
	}
	g := graph.Graph{}
	for i, c := range corners {
		x, y := c.x, c.y
		g.Nodes = append(g.Nodes, graph.Node{ID: string(rune('a' + i)), X: &x, Y: &y})
	}
	g.Nodes = append(g.Nodes, graph.Node{ID: "hub"})
	for i := range corners {
		g.Links = append(g.Links, graph.Link{Source: "hub", Target: string(rune('a' + i))})
	}

	// Offset center so the dispersed centroid (100, 100) starts away from it.
	opts := defaultOpts()
	opts.Width, opts.Height = 300, 300

	before := math.Hypot(100-150, 100-150)

	l, err := Stabilize(g, opts)
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}
	cx, cy := centroid(l)
	after := math.Hypot(cx-150, cy-150)

	if after >= before {
		t.Errorf("centroid distance to center = %.2f after, %.2f before; want convergence toward center", after, before)
	}
}

// Running a larger fixed budget on the same deterministic input must not
// leave the layout with materially more total link-length error - the
// schedule converges rather than diverges.
func TestStabilizeIterationMonotonicStability(t *testing.T) {
	small := defaultOpts()
	small.Iterations = 50
	large := defaultOpts()
	large.Iterations = 200

	ls, err := Stabilize(chainGraph(), small)
	if err != nil {
		t.Fatalf("Stabilize(50): %v", err)
	}
	ll, err := Stabilize(chainGraph(), large)
	if err != nil {
		t.Fatalf("Stabilize(200): %v", err)
	}

	errSmall := linkError(ls, 30)
	errLarge := linkError(ll, 30)

	const tolerance = 5.0
	if errLarge > errSmall+tolerance {
		t.Errorf("link error grew with budget: %.2f @50 → %.2f @200", errSmall, errLarge)
	}
}

func TestStabilizeDeterminism(t *testing.T) {
	l1, err := Stabilize(chainGraph(), defaultOpts())
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}
	l2, err := Stabilize(chainGraph(), defaultOpts())
	if err != nil {
		t.Fatalf("Stabilize: %v", err)
	}

	for i := range l1.Nodes {
		if l1.Nodes[i] != l2.Nodes[i] {
			t.Errorf("node %d differs between identical runs: %+v vs %+v", i, l1.Nodes[i], l2.Nodes[i])
		}
	}
}

func TestSimulationTickAccounting(t *testing.T) {
	s, err := New(chainGraph(), defaultOpts())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Ticks() != 0 || s.Remaining() != 100 {
		t.Fatalf("fresh simulation = %d ticks / %d remaining, want 0/100", s.Ticks(), s.Remaining())
	}

	alpha0 := s.Alpha()
	s.Tick()
	if s.Ticks() != 1 || s.Remaining() != 99 {
		t.Errorf("after one tick = %d ticks / %d remaining, want 1/99", s.Ticks(), s.Remaining())
	}
	if s.Alpha() >= alpha0 {
		t.Errorf("alpha did not cool: %v → %v", alpha0, s.Alpha())
	}

	if got := len(s.Particles()); got != 3 {
		t.Errorf("particles = %d, want 3", got)
	}
}

func TestSeedParticlesDeterministicSpiral(t *testing.T) {
	nodes := []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	p1 := seedParticles(nodes, 100, 100)
	p2 := seedParticles(nodes, 100, 100)

	for i := range p1 {
		if *p1[i] != *p2[i] {
			t.Errorf("seed %d not deterministic: %+v vs %+v", i, p1[i], p2[i])
		}
	}

	// No two seeded nodes may coincide.
	for i := 0; i < len(p1); i++ {
		for j := i + 1; j < len(p1); j++ {
			if p1[i].X == p1[j].X && p1[i].Y == p1[j].Y {
				t.Errorf("seeds %d and %d coincide at (%v, %v)", i, j, p1[i].X, p1[i].Y)
			}
		}
	}

	// Explicit positions pass through untouched.
	x, y := 42.0, 7.0
	p3 := seedParticles([]graph.Node{{ID: "fixed", X: &x, Y: &y}}, 100, 100)
	if p3[0].X != 42 || p3[0].Y != 7 {
		t.Errorf("explicit seed = (%v, %v), want (42, 7)", p3[0].X, p3[0].Y)
	}
}

func ptr(v float64) *float64 { return &v }
