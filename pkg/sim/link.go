package sim

import "math"

// spring is one link resolved to its particle endpoints. The bias splits the
// correction between the two endpoints in proportion to their degrees, so a
// hub absorbs less displacement than a leaf attached to it.
type spring struct {
	source, target *Particle
	bias           float64
}

// LinkForce pulls the endpoints of every link toward a separation of
// Distance. With Strength 1 the spring is applied at full force, undamped
// relative to the other forces.
type LinkForce struct {
	Distance float64
	Strength float64

	springs []spring
	random  func() float64
	edges   [][2]int // particle index pairs, resolved against the simulation order
}

// NewLinkForce creates a spring force over the given endpoint index pairs.
// The pairs index into the particle slice passed to Initialize.
func NewLinkForce(edges [][2]int, distance, strength float64) *LinkForce {
	return &LinkForce{Distance: distance, Strength: strength, edges: edges}
}

// Initialize implements [Force]. It resolves endpoint indices to particles
// and computes degree biases.
func (f *LinkForce) Initialize(particles []*Particle, random func() float64) {
	f.random = random

	degree := make([]int, len(particles))
	for _, e := range f.edges {
		degree[e[0]]++
		degree[e[1]]++
	}

	f.springs = make([]spring, len(f.edges))
	for i, e := range f.edges {
		ds, dt := degree[e[0]], degree[e[1]]
		f.springs[i] = spring{
			source: particles[e[0]],
			target: particles[e[1]],
			bias:   float64(ds) / float64(ds+dt),
		}
	}
}

// Apply implements [Force]. Each spring nudges its endpoints' velocities so
// their projected separation moves toward Distance.
func (f *LinkForce) Apply(alpha float64) {
	for _, s := range f.springs {
		x := s.target.X + s.target.VX - s.source.X - s.source.VX
		y := s.target.Y + s.target.VY - s.source.Y - s.source.VY
		if x == 0 {
			x = jiggleFrom(f.random)
		}
		if y == 0 {
			y = jiggleFrom(f.random)
		}
		l := math.Sqrt(x*x + y*y)
		l = (l - f.Distance) / l * alpha * f.Strength
		x *= l
		y *= l

		s.target.VX -= x * s.bias
		s.target.VY -= y * s.bias
		s.source.VX += x * (1 - s.bias)
		s.source.VY += y * (1 - s.bias)
	}
}
