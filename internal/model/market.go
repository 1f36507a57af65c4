package model

import "time"

// Candle represents a single OHLCV bar.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Ticker holds the 24-hour rolling statistics for a symbol.
type Ticker struct {
	Symbol           string    `json:"symbol"`
	LastPrice        float64   `json:"last_price"`
	ChangePercent24h float64   `json:"change_percent_24h"`
	Volume24h        float64   `json:"volume_24h"`
	High24h          float64   `json:"high_24h"`
	Low24h           float64   `json:"low_24h"`
	TradeCount       int64     `json:"trade_count"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// MarketSnapshot is the complete result of one monitor run: the 24h ticker,
// the per-timeframe indicator results and the aggregated signals.
type MarketSnapshot struct {
	Symbol      string            `json:"symbol"`
	Ticker      Ticker            `json:"ticker"`
	Timeframes  []TimeframeResult `json:"timeframes"`
	Signals     []string          `json:"signals"`
	GeneratedAt time.Time         `json:"generated_at"`
}
