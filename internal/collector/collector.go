package collector

import (
	"context"
	"fmt"
	"time"

	"RSISentinel/internal/calculator"
	"RSISentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Candles []model.Candle
	Err     error
	Price   float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchKlines(_ context.Context, _ string, _ string, limit int) ([]model.Candle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Candles != nil {
		return m.Candles, nil
	}
	base := m.Price
	if base == 0 {
		base = 100.0
	}
	return generateMockCandles(base, limit), nil
}

func generateMockCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		candles[i] = model.Candle{
			Time:  time.Now().Add(-time.Duration(count-i) * time.Minute),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return candles
}

// Collector orchestrates candle fetching and RSI computation.
type Collector struct {
	Fetcher  Fetcher
	Symbol   string
	Interval string
	Limit    int
	Window   int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, interval string, limit, window int) *Collector {
	return &Collector{
		Fetcher:  fetcher,
		Symbol:   symbol,
		Interval: interval,
		Limit:    limit,
		Window:   window,
	}
}

// Snapshot fetches the full lookback window and evaluates the RSI at its
// latest position. The RSI is NaN when only one sample came back; too few
// samples to form any delta surface as calculator.ErrInsufficientHistory.
func (c *Collector) Snapshot(ctx context.Context) (*model.Evaluation, error) {
	candles, err := c.Fetcher.FetchKlines(ctx, c.Symbol, c.Interval, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch klines: %w", err)
	}

	series := model.PriceSeries{
		Symbol:    c.Symbol,
		Candles:   candles,
		FetchedAt: time.Now(),
	}

	rsi, err := calculator.Latest(series.Closes(), c.Window)
	if err != nil {
		return nil, fmt.Errorf("compute rsi: %w", err)
	}

	last := candles[len(candles)-1]
	return &model.Evaluation{
		Symbol:  c.Symbol,
		Time:    series.FetchedAt,
		Price:   last.Close,
		RSI:     rsi,
		Samples: len(candles),
		Signal:  model.SignalNone,
	}, nil
}
