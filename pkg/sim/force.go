package sim

// Particle is the mutable per-node state advanced by the simulation: a
// position integrated from a velocity. Particles belong to a [Simulation];
// forces share and mutate them during a tick.
type Particle struct {
	ID     string
	X, Y   float64
	VX, VY float64
}

// Force is one component of the combined field applied every tick.
//
// Initialize is called once before the first tick with the particle set and
// the simulation's perturbation source (a deterministic generator of values
// in [0, 1)). Apply is called once per tick with the current alpha (the
// cooling factor in (0, 1]) and may mutate particle velocities or, for
// positional forces, positions directly.
type Force interface {
	Initialize(particles []*Particle, random func() float64)
	Apply(alpha float64)
}

// jiggleFrom derives a tiny non-zero offset from a [0, 1) source, used by
// forces to break exact overlaps between particles.
func jiggleFrom(random func() float64) float64 {
	return (random() - 0.5) * 1e-6
}
