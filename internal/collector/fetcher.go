package collector

import (
	"context"

	"RSISentinel/internal/model"
)

// Fetcher defines the interface for fetching candlestick data.
// Implementations return candles in chronological order, oldest first.
type Fetcher interface {
	FetchKlines(ctx context.Context, symbol, interval string, limit int) ([]model.Candle, error)
	Name() string
}
