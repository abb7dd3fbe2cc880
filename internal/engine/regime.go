package engine

const (
	// driftStepScale divides the per-tick uniform perturbation of drift.
	driftStepScale = 500.0
	// shockProbability is the per-tick chance of a volatility resample.
	shockProbability = 0.3
	// shockScale divides the resampled uniform volatility.
	shockScale = 25.0
)

// Regime is the (drift, volatility) pair consumed by the price process.
type Regime struct {
	Drift      float64
	Volatility float64
}

// RegimeController keeps the series non-stationary: drift random-walks a tiny
// unbiased step every tick, and volatility is resampled sporadically.
// Neither value is clamped; unbounded drift is part of the game.
type RegimeController struct {
	src     Source
	initial Regime
	regime  Regime
}

// NewRegimeController creates a controller starting at the given regime.
func NewRegimeController(src Source, initial Regime) *RegimeController {
	return &RegimeController{src: src, initial: initial, regime: initial}
}

// Step advances the regime one tick and reports whether a volatility shock
// fired on this tick.
func (c *RegimeController) Step() bool {
	c.regime.Drift += (c.src.Float64() - 0.5) / driftStepScale
	if c.src.Float64() < shockProbability {
		c.regime.Volatility = c.src.Float64() / shockScale
		return true
	}
	return false
}

// Current returns the regime in effect for this tick.
func (c *RegimeController) Current() Regime {
	return c.regime
}

// Reset restores the regime the controller was created with.
func (c *RegimeController) Reset() {
	c.regime = c.initial
}
