package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/analysis"
	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Ticker  *model.Ticker
	Candles map[string][]model.Candle // keyed by interval
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchTicker(_ context.Context, symbol string) (*model.Ticker, error) {
	if m.Ticker != nil {
		return m.Ticker, nil
	}
	return &model.Ticker{
		Symbol:    symbol,
		LastPrice: m.Price,
		High24h:   m.Price * 1.02,
		Low24h:    m.Price * 0.98,
		Volume24h: 1000000,
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockFetcher) FetchKlines(_ context.Context, _ string, interval string, limit int) ([]model.Candle, error) {
	if candles, ok := m.Candles[interval]; ok {
		return candles, nil
	}
	return generateMockCandles(m.Price, limit), nil
}

func generateMockCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		candles[i] = model.Candle{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return candles
}

// Collector orchestrates data fetching and indicator computation across the
// configured kline timeframes.
type Collector struct {
	Fetcher         Fetcher
	Symbol          string
	Timeframes      []string
	KlineLimit      int
	SpikeMultiplier float64
	SharpChangePct  float64
}

// NewCollector creates a Collector with the standard knobs defaulted; the
// caller overrides fields from config as needed.
func NewCollector(fetcher Fetcher, symbol string, timeframes []string) *Collector {
	return &Collector{
		Fetcher:         fetcher,
		Symbol:          symbol,
		Timeframes:      timeframes,
		KlineLimit:      20,
		SpikeMultiplier: 3.0,
		SharpChangePct:  5.0,
	}
}

// Collect fetches the 24h ticker and the klines of every configured
// timeframe, runs the indicator engine on each, and aggregates the
// cross-timeframe signals into a snapshot. Any fetch error aborts the run;
// partial snapshots are never produced.
func (c *Collector) Collect(ctx context.Context) (*model.MarketSnapshot, error) {
	ticker, err := c.Fetcher.FetchTicker(ctx, c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch ticker: %w", err)
	}

	results := make([]model.TimeframeResult, 0, len(c.Timeframes))
	for _, interval := range c.Timeframes {
		candles, err := c.Fetcher.FetchKlines(ctx, c.Symbol, interval, c.KlineLimit)
		if err != nil {
			return nil, fmt.Errorf("fetch %s klines: %w", interval, err)
		}
		if len(candles) < 15 {
			log.Printf("[WARN] %s %s: only %d candles, RSI will stay neutral", c.Symbol, interval, len(candles))
		}
		results = append(results, model.TimeframeResult{
			Interval: interval,
			Result:   analysis.Analyze(candles, c.SpikeMultiplier),
		})
	}

	return &model.MarketSnapshot{
		Symbol:      c.Symbol,
		Ticker:      *ticker,
		Timeframes:  results,
		Signals:     analysis.AggregateSignals(results, ticker.ChangePercent24h, c.SharpChangePct),
		GeneratedAt: time.Now(),
	}, nil
}
