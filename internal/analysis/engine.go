package analysis

import (
	"math"

	"github.com/hqzizania/crypto-monitoring-tools/internal/calculator"
	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

const (
	// trendWindow bounds how many of the most recent candles the trend
	// classification looks at.
	trendWindow = 10
	shortPeriod = 5
	rsiPeriod   = 14

	// minCandles is the floor below which no meaningful classification is
	// attempted and neutral defaults are returned instead.
	minCandles = 3

	defaultSpikeMultiplier = 3.0
)

// Analyze computes the indicator set for one timeframe from its candles.
// Fewer than minCandles yields the neutral result (unknown trend, RSI 50)
// rather than an error, so one thin timeframe never aborts a run.
func Analyze(candles []model.Candle, spikeMultiplier float64) model.IndicatorResult {
	if len(candles) < minCandles {
		return model.IndicatorResult{Trend: model.TrendUnknown, RSI: 50}
	}
	if spikeMultiplier <= 0 {
		spikeMultiplier = defaultSpikeMultiplier
	}

	window := candles
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	closes := calculator.ExtractCloses(window)
	lastClose := closes[len(closes)-1]

	shortMA := calculator.CalculateSMA(closes, shortPeriod)
	mediumMA := calculator.CalculateSMA(closes, len(closes))
	change := calculator.CalculateChangePercent(closes)

	trend := model.TrendSideways
	switch {
	case shortMA > mediumMA && lastClose > shortMA:
		trend = model.TrendBullish
	case shortMA < mediumMA && lastClose < shortMA:
		trend = model.TrendBearish
	}

	strength := 0.0
	if trend != model.TrendSideways {
		strength = round1(math.Min(math.Abs(change), 100))
	}

	spike, currentVol, avgVol := calculator.DetectVolumeSpike(window, spikeMultiplier)

	// RSI looks beyond the trend window: it wants the most recent
	// rsiPeriod+1 closes of the full series.
	rsi := round1(calculator.CalculateRSI(calculator.ExtractCloses(candles), rsiPeriod))

	return model.IndicatorResult{
		Trend:              trend,
		Strength:           strength,
		ShortMA:            shortMA,
		MediumMA:           mediumMA,
		PriceChangePercent: change,
		RSI:                rsi,
		VolumeSpike:        spike,
		CurrentVolume:      currentVol,
		AvgVolume:          avgVol,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
