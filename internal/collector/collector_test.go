package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

func TestCollect_BuildsSnapshot(t *testing.T) {
	fetcher := &MockFetcher{Price: 50000}
	c := NewCollector(fetcher, "BTCUSDT", []string{"5m", "15m", "1h", "4h"})

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Symbol != "BTCUSDT" {
		t.Errorf("expected symbol BTCUSDT, got %s", snap.Symbol)
	}
	if snap.Ticker.LastPrice != 50000 {
		t.Errorf("expected ticker price 50000, got %v", snap.Ticker.LastPrice)
	}
	if len(snap.Timeframes) != 4 {
		t.Fatalf("expected 4 timeframe results, got %d", len(snap.Timeframes))
	}
	// Results keep the configured order.
	for i, want := range []string{"5m", "15m", "1h", "4h"} {
		if snap.Timeframes[i].Interval != want {
			t.Errorf("timeframe %d: expected %s, got %s", i, want, snap.Timeframes[i].Interval)
		}
	}
	if len(snap.Signals) == 0 {
		t.Error("expected at least the consensus signal")
	}
	if snap.GeneratedAt.IsZero() {
		t.Error("expected a generation timestamp")
	}
}

func TestCollect_UsesInjectedCandles(t *testing.T) {
	rising := make([]model.Candle, 10)
	for i := range rising {
		rising[i] = model.Candle{Close: 100 + float64(i), Volume: 10}
	}
	fetcher := &MockFetcher{
		Price:   50000,
		Candles: map[string][]model.Candle{"5m": rising},
	}
	c := NewCollector(fetcher, "BTCUSDT", []string{"5m"})

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := snap.Timeframes[0].Result.Trend; got != model.TrendBullish {
		t.Errorf("expected bullish from rising candles, got %s", got)
	}
}

type failingFetcher struct {
	tickerErr error
	klinesErr error
}

func (f *failingFetcher) Name() string { return "failing" }

func (f *failingFetcher) FetchTicker(_ context.Context, symbol string) (*model.Ticker, error) {
	if f.tickerErr != nil {
		return nil, f.tickerErr
	}
	return &model.Ticker{Symbol: symbol, LastPrice: 100}, nil
}

func (f *failingFetcher) FetchKlines(_ context.Context, _, _ string, _ int) ([]model.Candle, error) {
	return nil, f.klinesErr
}

func TestCollect_AbortsOnFetchError(t *testing.T) {
	c := NewCollector(&failingFetcher{tickerErr: errors.New("boom")}, "BTCUSDT", []string{"5m"})
	if _, err := c.Collect(context.Background()); err == nil {
		t.Error("expected error when the ticker fetch fails")
	}

	c = NewCollector(&failingFetcher{klinesErr: errors.New("boom")}, "BTCUSDT", []string{"5m"})
	if _, err := c.Collect(context.Background()); err == nil {
		t.Error("expected error when a kline fetch fails")
	}
}
