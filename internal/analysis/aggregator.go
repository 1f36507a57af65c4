package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

const (
	// consensusCount is how many timeframes must agree before the trend
	// consensus signal flips from mixed to directional.
	consensusCount = 3

	overboughtRSI = 70
	oversoldRSI   = 30

	defaultSharpChangePercent = 5.0
)

// AggregateSignals derives cross-timeframe signals from the per-timeframe
// results plus the 24h ticker change. Rules run in a fixed order so output
// is deterministic: trend consensus (exactly one line, always), RSI
// extremes, 24h volatility, volume anomalies. Returns nil when there are no
// results to aggregate.
func AggregateSignals(results []model.TimeframeResult, change24h, sharpChangePercent float64) []string {
	if len(results) == 0 {
		return nil
	}
	if sharpChangePercent <= 0 {
		sharpChangePercent = defaultSharpChangePercent
	}

	var bullish, bearish int
	var rsiSum float64
	var spiking []string
	for _, r := range results {
		switch r.Result.Trend {
		case model.TrendBullish:
			bullish++
		case model.TrendBearish:
			bearish++
		}
		rsiSum += r.Result.RSI
		if r.Result.VolumeSpike {
			spiking = append(spiking, r.Interval)
		}
	}

	signals := make([]string, 0, 4)

	switch {
	case bullish >= consensusCount:
		signals = append(signals, fmt.Sprintf("📈 Multi-timeframe bullish: %d/%d timeframes trending up", bullish, len(results)))
	case bearish >= consensusCount:
		signals = append(signals, fmt.Sprintf("📉 Multi-timeframe bearish: %d/%d timeframes trending down", bearish, len(results)))
	default:
		signals = append(signals, fmt.Sprintf("➡️ Mixed picture: %d bullish vs %d bearish timeframes", bullish, bearish))
	}

	avgRSI := rsiSum / float64(len(results))
	if avgRSI > overboughtRSI {
		signals = append(signals, fmt.Sprintf("⚠️ Overbought: average RSI %.1f, watch for a pullback", avgRSI))
	} else if avgRSI < oversoldRSI {
		signals = append(signals, fmt.Sprintf("💡 Oversold: average RSI %.1f, possible bounce zone", avgRSI))
	}

	if math.Abs(change24h) > sharpChangePercent {
		signals = append(signals, fmt.Sprintf("⚡ Sharp 24h move: %+.2f%%", change24h))
	}

	if len(spiking) > 0 {
		signals = append(signals, fmt.Sprintf("📊 Volume spike on %s", strings.Join(spiking, ", ")))
	}

	return signals
}
