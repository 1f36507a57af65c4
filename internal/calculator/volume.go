package calculator

import "github.com/hqzizania/crypto-monitoring-tools/internal/model"

// CalculateAvgVolume scans every candle except the most recent one and
// returns the mean volume. Returns 0 when fewer than 2 candles are provided.
func CalculateAvgVolume(candles []model.Candle) float64 {
	if len(candles) < 2 {
		return 0
	}
	sum := 0.0
	for _, c := range candles[:len(candles)-1] {
		sum += c.Volume
	}
	return sum / float64(len(candles)-1)
}

// DetectVolumeSpike reports whether the most recent candle's volume exceeds
// the average of the preceding candles by the given multiplier, along with
// the two volumes it compared.
func DetectVolumeSpike(candles []model.Candle, multiplier float64) (spike bool, current, avg float64) {
	if len(candles) == 0 {
		return false, 0, 0
	}
	current = candles[len(candles)-1].Volume
	if len(candles) < 2 {
		return false, current, 0
	}
	avg = CalculateAvgVolume(candles)
	return current > avg*multiplier, current, avg
}
