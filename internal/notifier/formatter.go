package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

const maxContextChars = 140

// FormatMarketReport renders a monitor snapshot as an HTML-formatted message
// suitable for both console output and Telegram.
func FormatMarketReport(snap *model.MarketSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s Market Monitor</b> | %s\n\n",
		snap.Symbol, snap.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC")))

	t := snap.Ticker
	b.WriteString(fmt.Sprintf("Price: %.2f (%+.2f%% 24h)\n", t.LastPrice, t.ChangePercent24h))
	b.WriteString(fmt.Sprintf("24h range: %.2f ~ %.2f\n", t.Low24h, t.High24h))
	b.WriteString(fmt.Sprintf("24h volume: %.2f (%d trades)\n\n", t.Volume24h, t.TradeCount))

	b.WriteString("📈 <b>Timeframes:</b>\n")
	for _, tf := range snap.Timeframes {
		b.WriteString("  " + formatTimeframe(tf) + "\n")
	}

	if len(snap.Signals) > 0 {
		b.WriteString("\n🔔 <b>Signals:</b>\n")
		for _, s := range snap.Signals {
			b.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	return b.String()
}

func formatTimeframe(tf model.TimeframeResult) string {
	r := tf.Result
	line := fmt.Sprintf("%s: %s", tf.Interval, r.Trend)
	if r.Trend == model.TrendBullish || r.Trend == model.TrendBearish {
		line += fmt.Sprintf(" (strength %.1f)", r.Strength)
	}
	line += fmt.Sprintf(" | RSI %.1f", r.RSI)
	if r.VolumeSpike {
		line += " | volume spike"
	}
	return line
}

// FormatDetectionAlert renders newly detected tokens as an HTML-formatted
// alert message.
func FormatDetectionAlert(detections []model.TokenDetection) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🚨 <b>New Token Detections</b> | %s\n\n",
		time.Now().Format("2006-01-02 15:04")))

	for i, d := range detections {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, d.Address, d.Chain))
		b.WriteString(fmt.Sprintf("   Risk: %s (score %d)\n", d.RiskLevel, d.RiskScore))
		if d.Context != "" {
			b.WriteString(fmt.Sprintf("   Context: %s\n", truncate(d.Context, maxContextChars)))
		}
	}

	b.WriteString("\n⚠️ Always verify the contract before interacting with it.")
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
