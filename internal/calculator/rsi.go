package calculator

import (
	"errors"
	"math"
)

// ErrInsufficientHistory is returned when no price samples are available.
var ErrInsufficientHistory = errors.New("insufficient price history")

// Series computes the RSI for every position of closes over the given
// lookback window. The result is aligned with the input: index 0 has no
// preceding delta and is NaN; every later position is defined.
//
// Gains and losses are averaged with a simple arithmetic mean over the
// trailing min(i, window) deltas, so early positions use a shrinking
// window instead of staying undefined. This is deliberately not Wilder
// smoothing; the two produce different oscillators.
func Series(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	if len(closes) == 0 {
		return nil, ErrInsufficientHistory
	}

	rsi := make([]float64, len(closes))
	rsi[0] = math.NaN()

	// Ring of the last `window` gain/loss pairs with running sums.
	gains := make([]float64, window)
	losses := make([]float64, window)
	var gainSum, lossSum float64
	count := 0 // deltas currently in the ring, capped at window

	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain := math.Max(delta, 0)
		loss := math.Max(-delta, 0)

		slot := (i - 1) % window
		if count == window {
			gainSum -= gains[slot]
			lossSum -= losses[slot]
		} else {
			count++
		}
		gains[slot] = gain
		losses[slot] = loss
		gainSum += gain
		lossSum += loss

		rsi[i] = fromAverages(gainSum/float64(count), lossSum/float64(count))
	}
	return rsi, nil
}

// fromAverages maps average gain/loss to an RSI value. A flat window
// (both averages zero) is defined as neutral 50 rather than letting the
// 0/0 division propagate NaN; losses-only yields 0, gains-only 100.
func fromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// Latest computes the RSI series and returns its final value. The value is
// NaN when closes holds a single sample (warm-up position).
func Latest(closes []float64, window int) (float64, error) {
	series, err := Series(closes, window)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}
