package calculator

// CalculateRSI computes the RSI over the most recent period+1 closes using
// simple averages of gains and losses across the period transitions, not
// Wilder smoothing. Returns the neutral 50.0 when fewer than period+1
// closes are available.
func CalculateRSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return 50.0
	}

	window := closes[len(closes)-(period+1):]
	var gains, losses float64
	for i := 1; i < len(window); i++ {
		change := window[i] - window[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change // make positive
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
