package candle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomSeries(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	series := make([]float64, n)
	price := 100.0
	for i := range series {
		price *= 1 + (r.Float64()-0.5)*0.04
		series[i] = price
	}
	return series
}

func TestBuildCoversWholeSeries(t *testing.T) {
	for _, n := range []int{1, 4, 5, 6, 23, 100} {
		series := randomSeries(n, int64(n))
		candles := Build(series, 5)

		// Concatenating all bucket spans must reconstruct the series
		// coverage: consecutive indexes, first at 0, last span ending at
		// len(series).
		covered := 0
		for _, c := range candles {
			require.Equal(t, covered, c.Index, "buckets are contiguous and ordered")
			width := 5
			if c.Index+width > len(series) {
				width = len(series) - c.Index
			}
			require.Equal(t, series[c.Index], c.Open)
			require.Equal(t, series[c.Index+width-1], c.Close)
			covered += width
		}
		require.Equal(t, len(series), covered, "no sample dropped")
	}
}

func TestBuildHighLowBounds(t *testing.T) {
	series := randomSeries(97, 7)
	for _, c := range Build(series, 5) {
		require.GreaterOrEqual(t, c.High, c.Open)
		require.GreaterOrEqual(t, c.High, c.Close)
		require.GreaterOrEqual(t, c.High, c.Low)
		require.LessOrEqual(t, c.Low, c.Open)
		require.LessOrEqual(t, c.Low, c.Close)
	}
}

func TestBuildShortFinalBucket(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5, 6, 7}
	candles := Build(series, 5)

	require.Len(t, candles, 2)
	require.Equal(t, Candle{Index: 0, Open: 1, High: 5, Low: 1, Close: 5}, candles[0])
	require.Equal(t, Candle{Index: 5, Open: 6, High: 7, Low: 6, Close: 7}, candles[1])
}

func TestBuildSingleSample(t *testing.T) {
	candles := Build([]float64{42}, 5)

	require.Len(t, candles, 1)
	require.Equal(t, Candle{Index: 0, Open: 42, High: 42, Low: 42, Close: 42}, candles[0])
}

func TestBuildEmptyAndInvalid(t *testing.T) {
	require.Nil(t, Build(nil, 5))
	require.Nil(t, Build([]float64{1, 2}, 0))
}

func TestBuildDeterministic(t *testing.T) {
	series := randomSeries(60, 9)
	require.Equal(t, Build(series, 5), Build(series, 5))
}
