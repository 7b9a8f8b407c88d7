package sim

import "math"

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultLinkLength is the rest distance the spring force pulls linked
	// nodes toward, in viewport units.
	DefaultLinkLength = 30.0

	// DefaultIterations is the fixed tick budget for a layout pass.
	// The budget is a deterministic cost bound, not a convergence tolerance.
	DefaultIterations = 300

	// DefaultRepulsion is the many-body force strength. Negative values
	// repel; the magnitude controls how strongly nodes spread apart.
	DefaultRepulsion = -120.0

	// DefaultLinkStrength is the spring force coefficient. 1 means the
	// spring is not damped relative to the other forces.
	DefaultLinkStrength = 1.0

	// DefaultCenterStrength is the centering force coefficient. 1 means the
	// centroid is translated fully onto the viewport center every tick.
	DefaultCenterStrength = 1.0

	// DefaultVelocityDecay is the per-tick velocity damping rate.
	// Velocities are scaled by (1 - DefaultVelocityDecay) after each tick.
	DefaultVelocityDecay = 0.4

	// DefaultSeed seeds the perturbation source used to separate nodes that
	// start at coincident positions.
	DefaultSeed = uint64(42)

	// alphaMin is the cooling floor the alpha schedule decays toward over
	// the iteration budget.
	alphaMin = 0.001
)

// =============================================================================
// Options - Simulation Configuration
// =============================================================================

// Options configures a layout simulation.
//
// Width, Height, LinkLength and Iterations are required and strictly
// validated: non-positive or non-finite values are rejected with
// [InvalidParameterError]. The force coefficients are optional - zero values
// are replaced by the package defaults.
type Options struct {
	// Width and Height describe the target viewport in the same units as
	// the output coordinates. The layout is centered on (Width/2, Height/2).
	Width  float64
	Height float64

	// LinkLength is the rest distance for the spring force.
	LinkLength float64

	// Iterations is the number of discrete ticks to advance before
	// returning. The simulation stops after exactly this many ticks.
	Iterations int

	// Repulsion is the many-body strength (default DefaultRepulsion).
	Repulsion float64

	// LinkStrength is the spring coefficient (default DefaultLinkStrength).
	LinkStrength float64

	// CenterStrength is the centering coefficient (default DefaultCenterStrength).
	CenterStrength float64

	// VelocityDecay is the damping rate in [0, 1) (default DefaultVelocityDecay).
	VelocityDecay float64

	// Seed seeds the deterministic perturbation source (default DefaultSeed).
	Seed uint64
}

// ValidateAndSetDefaults checks required parameters and fills optional ones.
// It returns an [InvalidParameterError] describing the first violation found.
func (o *Options) ValidateAndSetDefaults() error {
	if err := requirePositiveFinite("width", o.Width); err != nil {
		return err
	}
	if err := requirePositiveFinite("height", o.Height); err != nil {
		return err
	}
	if err := requirePositiveFinite("link length", o.LinkLength); err != nil {
		return err
	}
	if o.Iterations <= 0 {
		return invalidParam("iterations", float64(o.Iterations), "must be a positive integer")
	}

	if o.Repulsion == 0 {
		o.Repulsion = DefaultRepulsion
	}
	if o.LinkStrength == 0 {
		o.LinkStrength = DefaultLinkStrength
	}
	if o.CenterStrength == 0 {
		o.CenterStrength = DefaultCenterStrength
	}
	if o.VelocityDecay == 0 {
		o.VelocityDecay = DefaultVelocityDecay
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	if math.IsNaN(o.Repulsion) || math.IsInf(o.Repulsion, 0) {
		return invalidParam("repulsion", o.Repulsion, "must be finite")
	}
	if math.IsNaN(o.LinkStrength) || math.IsInf(o.LinkStrength, 0) {
		return invalidParam("link strength", o.LinkStrength, "must be finite")
	}
	if math.IsNaN(o.CenterStrength) || math.IsInf(o.CenterStrength, 0) {
		return invalidParam("center strength", o.CenterStrength, "must be finite")
	}
	if o.VelocityDecay < 0 || o.VelocityDecay >= 1 || math.IsNaN(o.VelocityDecay) {
		return invalidParam("velocity decay", o.VelocityDecay, "must be in [0, 1)")
	}

	return nil
}

func requirePositiveFinite(param string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidParam(param, v, "must be positive and finite")
	}
	return nil
}
