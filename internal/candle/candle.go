// Package candle buckets consecutive price ticks into OHLC bars.
package candle

// Candle summarizes a contiguous run of ticks. Index is the starting offset
// of the run within the source series.
type Candle struct {
	Index int
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Build partitions the series into non-overlapping runs of bucketSize ticks;
// the final run may be shorter. The result is recomputed fully on each call
// and is deterministic given the series.
func Build(series []float64, bucketSize int) []Candle {
	if bucketSize <= 0 || len(series) == 0 {
		return nil
	}

	out := make([]Candle, 0, (len(series)+bucketSize-1)/bucketSize)
	for start := 0; start < len(series); start += bucketSize {
		end := start + bucketSize
		if end > len(series) {
			end = len(series)
		}

		c := Candle{
			Index: start,
			Open:  series[start],
			High:  series[start],
			Low:   series[start],
			Close: series[end-1],
		}
		for _, p := range series[start+1 : end] {
			if p > c.High {
				c.High = p
			}
			if p < c.Low {
				c.Low = p
			}
		}
		out = append(out, c)
	}
	return out
}
