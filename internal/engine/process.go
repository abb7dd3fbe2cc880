// Package engine holds the numeric core of the simulation: the price process
// and the drift/volatility regime that drives it.
package engine

import "math"

// NextPrice advances the price one step using a discrete multiplicative
// recurrence with unit time step:
//
//	next = prev * exp((drift - 0.5*vol^2) + vol*eps)
//
// eps is uniform on [-1, 1], not a normal variate. The bounded support is
// intentional; gameplay balance depends on it.
func NextPrice(src Source, prev, drift, volatility float64) float64 {
	eps := 2*src.Float64() - 1
	return prev * math.Exp((drift-0.5*volatility*volatility)+volatility*eps)
}

// GenerateInitialSeries seeds a fresh price series of the given length,
// iterating the same recurrence from the start price.
func GenerateInitialSeries(src Source, length int, start, drift, volatility float64) []float64 {
	if length <= 0 {
		return nil
	}
	series := make([]float64, length)
	series[0] = start
	for i := 1; i < length; i++ {
		series[i] = NextPrice(src, series[i-1], drift, volatility)
	}
	return series
}
