package collector

import (
	"context"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error)
	FetchKlines(ctx context.Context, symbol, interval string, limit int) ([]model.Candle, error)
	Name() string
}
