package model

// Trend classifies the direction of a single timeframe.
type Trend string

const (
	TrendBullish  Trend = "bullish"
	TrendBearish  Trend = "bearish"
	TrendSideways Trend = "sideways"
	TrendUnknown  Trend = "unknown"
)

// IndicatorResult holds all computed technical indicators for one timeframe.
type IndicatorResult struct {
	Trend              Trend   `json:"trend"`
	Strength           float64 `json:"strength"` // 0 ~ 100
	ShortMA            float64 `json:"short_ma"`
	MediumMA           float64 `json:"medium_ma"`
	PriceChangePercent float64 `json:"price_change_percent"`
	RSI                float64 `json:"rsi"` // 0 ~ 100
	VolumeSpike        bool    `json:"volume_spike"`
	CurrentVolume      float64 `json:"current_volume"`
	AvgVolume          float64 `json:"avg_volume"`
}

// TimeframeResult pairs a kline interval with its indicator result. Snapshots
// keep these in a slice so the configured timeframe order survives into
// reports and JSON output.
type TimeframeResult struct {
	Interval string          `json:"interval"`
	Result   IndicatorResult `json:"result"`
}
