package calculator

import "github.com/hqzizania/crypto-monitoring-tools/internal/model"

// CalculateSMA computes the simple moving average of the given prices over
// the specified period. When fewer than period prices are available it
// averages what is there; an empty slice or non-positive period yields 0.
func CalculateSMA(prices []float64, period int) float64 {
	if len(prices) == 0 || period <= 0 {
		return 0
	}
	start := len(prices) - period
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range prices[start:] {
		sum += p
	}
	return sum / float64(len(prices)-start)
}

// CalculateChangePercent returns the percentage change from the first to the
// last close of the window. Windows shorter than 2 closes, or starting at a
// zero price, yield 0.
func CalculateChangePercent(closes []float64) float64 {
	if len(closes) < 2 || closes[0] == 0 {
		return 0
	}
	return (closes[len(closes)-1] - closes[0]) / closes[0] * 100
}

// ExtractCloses returns the close prices of a candle sequence in order.
func ExtractCloses(candles []model.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}
