// Package indicator computes moving averages over the realized price series.
// SMA and EMA are pure functions of the series snapshot; nothing is retained
// between calls. The series is short and bounded, so full recomputation per
// tick is fine.
package indicator

// SMA returns the causal sliding-window mean of the series. The result is nil
// when the series is shorter than the window, otherwise its length is
// len(series)-window+1. A running sum keeps the total cost O(n).
func SMA(series []float64, window int) []float64 {
	if window <= 0 || len(series) < window {
		return nil
	}

	out := make([]float64, 0, len(series)-window+1)
	var sum float64
	for i, p := range series {
		sum += p
		if i >= window {
			sum -= series[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// EMA returns the exponential moving average of the series with smoothing
// factor k = 2/(window+1). The first value is seeded from the first sample,
// so the result has the same length as the series. Nil for an empty series.
func EMA(series []float64, window int) []float64 {
	if len(series) == 0 || window <= 0 {
		return nil
	}

	k := 2 / float64(window+1)
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = series[i]*k + out[i-1]*(1-k)
	}
	return out
}
