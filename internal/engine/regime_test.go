package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegimeDriftRandomWalk(t *testing.T) {
	// Draws: drift perturbation 0.75 (-> +0.25/500), then 0.9 (no shock).
	src := &fakeSource{draws: []float64{0.75, 0.9}}
	c := NewRegimeController(src, Regime{Drift: 0.001, Volatility: 0.02})

	shocked := c.Step()

	require.False(t, shocked)
	reg := c.Current()
	require.InDelta(t, 0.001+0.25/500, reg.Drift, 1e-15)
	require.Equal(t, 0.02, reg.Volatility, "volatility unchanged without a shock")
}

func TestRegimeVolatilityShock(t *testing.T) {
	// Second draw 0.1 < 0.3 fires the shock; third draw 0.5 resamples
	// volatility to 0.5/25.
	src := &fakeSource{draws: []float64{0.5, 0.1, 0.5}}
	c := NewRegimeController(src, Regime{Volatility: 0.02})

	shocked := c.Step()

	require.True(t, shocked)
	require.InDelta(t, 0.5/25, c.Current().Volatility, 1e-15)
}

func TestRegimeNoClamping(t *testing.T) {
	// Drift keeps drifting without bounds; 1000 maximal steps push it far
	// beyond any "sane" range and that is intended.
	src := &fakeSource{draws: []float64{0.9999, 0.9}}
	c := NewRegimeController(src, Regime{})

	for i := 0; i < 1000; i++ {
		c.Step()
	}
	require.Greater(t, c.Current().Drift, 0.9)
}

func TestRegimeShockFrequency(t *testing.T) {
	src := NewSource(99)
	c := NewRegimeController(src, Regime{Volatility: 0.02})

	shocks := 0
	const n = 20_000
	for i := 0; i < n; i++ {
		if c.Step() {
			shocks++
		}
	}
	// p=0.3 per tick; allow a generous band around the expectation.
	require.InDelta(t, 0.3, float64(shocks)/n, 0.02)
}

func TestRegimeReset(t *testing.T) {
	src := NewSource(3)
	initial := Regime{Drift: 0.001, Volatility: 0.02}
	c := NewRegimeController(src, initial)

	for i := 0; i < 50; i++ {
		c.Step()
	}
	require.NotEqual(t, initial, c.Current())

	c.Reset()
	require.Equal(t, initial, c.Current())
}
