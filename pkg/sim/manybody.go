package sim

import "math"

// distanceMin2 clamps the squared distance used by the repulsion force so
// that nearly-coincident nodes do not receive unbounded velocities.
const distanceMin2 = 1.0

// ManyBody applies an n-body repulsion between every pair of particles. The
// force magnitude decays with the squared distance, so distant nodes barely
// interact while close ones are pushed firmly apart.
//
// Strength is negative for repulsion (the usual case); a positive strength
// turns the force into global attraction.
type ManyBody struct {
	Strength float64

	particles []*Particle
	random    func() float64
}

// NewManyBody creates a repulsion force with the given strength.
func NewManyBody(strength float64) *ManyBody {
	return &ManyBody{Strength: strength}
}

// Initialize implements [Force].
func (f *ManyBody) Initialize(particles []*Particle, random func() float64) {
	f.particles = particles
	f.random = random
}

// Apply implements [Force]. The evaluation is exact pairwise, O(n²) per tick.
func (f *ManyBody) Apply(alpha float64) {
	for i, p := range f.particles {
		for j, q := range f.particles {
			if i == j {
				continue
			}
			dx := q.X - p.X
			dy := q.Y - p.Y
			if dx == 0 {
				dx = jiggleFrom(f.random)
			}
			if dy == 0 {
				dy = jiggleFrom(f.random)
			}
			l := dx*dx + dy*dy
			if l < distanceMin2 {
				l = math.Sqrt(distanceMin2 * l)
			}
			w := f.Strength * alpha / l
			p.VX += dx * w
			p.VY += dy * w
		}
	}
}
