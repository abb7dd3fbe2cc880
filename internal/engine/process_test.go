package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource replays a scripted sequence of draws.
type fakeSource struct {
	draws []float64
	pos   int
}

func (f *fakeSource) Float64() float64 {
	v := f.draws[f.pos%len(f.draws)]
	f.pos++
	return v
}

func TestNextPricePositive(t *testing.T) {
	src := NewSource(42)

	prev := 100.0
	for i := 0; i < 10_000; i++ {
		drift := 4*src.Float64() - 2
		vol := src.Float64() * 3
		prev = NextPrice(src, prev, drift, vol)
		require.Greater(t, prev, 0.0, "price must stay strictly positive")
	}
}

func TestNextPriceShockBounds(t *testing.T) {
	// With a scripted draw the recurrence is exact: draw=1 gives eps=+1,
	// draw=0 gives eps=-1.
	high := NextPrice(&fakeSource{draws: []float64{0.999999}}, 100, 0, 0.5)
	low := NextPrice(&fakeSource{draws: []float64{0}}, 100, 0, 0.5)

	require.Greater(t, high, 100.0)
	require.Less(t, low, 100.0)
}

func TestNextPriceZeroVolatility(t *testing.T) {
	// vol=0 removes the random term entirely; only drift moves the price.
	next := NextPrice(&fakeSource{draws: []float64{0.123}}, 100, 0, 0)
	require.InDelta(t, 100.0, next, 1e-12)
}

func TestNextPriceDeterministicUnderSeed(t *testing.T) {
	a := NewSource(7)
	b := NewSource(7)

	pa, pb := 50.0, 50.0
	for i := 0; i < 100; i++ {
		pa = NextPrice(a, pa, 0.001, 0.02)
		pb = NextPrice(b, pb, 0.001, 0.02)
		require.Equal(t, pa, pb)
	}
}

func TestGenerateInitialSeries(t *testing.T) {
	series := GenerateInitialSeries(NewSource(1), 50, 100, 0, 0.02)

	require.Len(t, series, 50)
	require.Equal(t, 100.0, series[0])
	for _, p := range series {
		require.Greater(t, p, 0.0)
	}

	// Same seed, same series.
	again := GenerateInitialSeries(NewSource(1), 50, 100, 0, 0.02)
	require.Equal(t, series, again)
}

func TestGenerateInitialSeriesEmpty(t *testing.T) {
	require.Nil(t, GenerateInitialSeries(NewSource(1), 0, 100, 0, 0.02))
}
