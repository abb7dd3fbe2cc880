package indicator

import (
	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
	"github.com/cinar/indicator/v2/trend"
)

// minMACDSamples is the slow EMA period of the standard MACD.
const minMACDSamples = 26

// RSI computes the Relative Strength Index for the given period. These extra
// overlays back the unlockable indicator toggles; they are not part of the
// core tick snapshot. Nil when there is not enough data.
func RSI(series []float64, period int) []float64 {
	if period <= 0 || len(series) < period+1 {
		return nil
	}

	rsi := momentum.NewRsiWithPeriod[float64](period)
	return helper.ChanToSlice(rsi.Compute(helper.SliceToChan(series)))
}

// MACD computes the MACD line. Nil when there is not enough data.
func MACD(series []float64) []float64 {
	if len(series) < minMACDSamples {
		return nil
	}

	macd := trend.NewMacd[float64]()
	macdChan, signalChan := macd.Compute(helper.SliceToChan(series))
	// drain signal channel to prevent blocking
	go func() {
		for range signalChan {
		}
	}()
	return helper.ChanToSlice(macdChan)
}
