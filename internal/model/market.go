package model

import "time"

// Candle represents a single closed candlestick sample.
type Candle struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds the fetched lookback window for one symbol,
// chronological order, most recent last. Rebuilt fully on every poll cycle.
type PriceSeries struct {
	Symbol    string
	Candles   []Candle
	FetchedAt time.Time
}

// Closes returns the closing prices in chronological order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		closes[i] = c.Close
	}
	return closes
}
