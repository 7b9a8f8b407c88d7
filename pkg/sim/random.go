package sim

// lcg is a small deterministic linear congruential generator used to perturb
// nodes that end up at exactly coincident positions. The constants are the
// classic Numerical Recipes parameters for a 32-bit sequence.
type lcg struct {
	state uint64
}

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed % lcgModulus}
}

// float64 returns the next value in [0, 1).
func (r *lcg) float64() float64 {
	r.state = (lcgMultiplier*r.state + lcgIncrement) % lcgModulus
	return float64(r.state) / lcgModulus
}
