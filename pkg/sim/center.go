package sim

// Center translates all particles so their centroid moves toward (X, Y).
// With Strength 1 the centroid lands exactly on the target every tick; lower
// strengths nudge it part of the way. The translation adjusts positions
// directly and does not interact with alpha, so the graph cannot drift off
// canvas as the simulation cools.
type Center struct {
	X, Y     float64
	Strength float64

	particles []*Particle
}

// NewCenter creates a centering force on the given point.
func NewCenter(x, y, strength float64) *Center {
	return &Center{X: x, Y: y, Strength: strength}
}

// Initialize implements [Force].
func (f *Center) Initialize(particles []*Particle, _ func() float64) {
	f.particles = particles
}

// Apply implements [Force].
func (f *Center) Apply(_ float64) {
	n := len(f.particles)
	if n == 0 {
		return
	}
	var sx, sy float64
	for _, p := range f.particles {
		sx += p.X
		sy += p.Y
	}
	sx = (sx/float64(n) - f.X) * f.Strength
	sy = (sy/float64(n) - f.Y) * f.Strength
	for _, p := range f.particles {
		p.X -= sx
		p.Y -= sy
	}
}
