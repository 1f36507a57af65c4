package calculator

import (
	"math"
	"testing"
)

func increasingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}

func decreasingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	return closes
}

func TestCalculateRSI_StrictlyIncreasing(t *testing.T) {
	got := CalculateRSI(increasingCloses(15), 14)
	if got != 100 {
		t.Errorf("expected 100 for strictly increasing closes, got %v", got)
	}
}

func TestCalculateRSI_StrictlyDecreasing(t *testing.T) {
	// avgGain = 0 → rs = 0 → rsi = 0
	got := CalculateRSI(decreasingCloses(15), 14)
	if math.Abs(got) > 1e-9 {
		t.Errorf("expected 0 for strictly decreasing closes, got %v", got)
	}
}

func TestCalculateRSI_InsufficientData(t *testing.T) {
	if got := CalculateRSI(increasingCloses(14), 14); got != 50 {
		t.Errorf("expected neutral 50 with 14 closes, got %v", got)
	}
	if got := CalculateRSI(nil, 14); got != 50 {
		t.Errorf("expected neutral 50 with no closes, got %v", got)
	}
}

func TestCalculateRSI_KnownValues(t *testing.T) {
	// 7 gains of 1 and 7 losses of 1 → rs = 1 → rsi = 50.
	alternating := []float64{100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100, 101, 100}
	if got := CalculateRSI(alternating, 14); math.Abs(got-50) > 1e-9 {
		t.Errorf("alternating closes: expected 50, got %v", got)
	}

	// Gains sum 3, losses sum 1, flats contribute nothing → rs = 3 → rsi = 75.
	mixed := []float64{100, 101, 102, 103, 102, 102, 102, 102, 102, 102, 102, 102, 102, 102, 102}
	if got := CalculateRSI(mixed, 14); math.Abs(got-75) > 1e-9 {
		t.Errorf("mixed closes: expected 75, got %v", got)
	}
}

func TestCalculateRSI_UsesRecentWindowOnly(t *testing.T) {
	tail := increasingCloses(15)
	padded := append([]float64{5000, 1, 3000, 2}, tail...)
	if got, want := CalculateRSI(padded, 14), CalculateRSI(tail, 14); got != want {
		t.Errorf("older closes must not affect the result: got %v, want %v", got, want)
	}
}
