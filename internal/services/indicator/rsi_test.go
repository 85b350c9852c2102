package indicator

import "testing"

func TestRSI_InsufficientData(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = float64(100 + i)
	}
	if _, ok := RSI(closes, 14); ok {
		t.Fatal("expected RSI unavailable for 15 samples")
	}
	if _, ok := RSI(nil, 14); ok {
		t.Fatal("expected RSI unavailable for empty input")
	}
}

func TestRSI_MonotonicUp(t *testing.T) {
	closes := make([]float64, 48)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi, ok := RSI(closes, 14)
	if !ok {
		t.Fatal("expected RSI available")
	}
	if rsi < 99 {
		t.Errorf("monotonic gains: rsi = %.2f, want near 100", rsi)
	}
}

func TestRSI_MonotonicDown(t *testing.T) {
	closes := make([]float64, 48)
	for i := range closes {
		closes[i] = 1000 - float64(i)
	}
	rsi, ok := RSI(closes, 14)
	if !ok {
		t.Fatal("expected RSI available")
	}
	if rsi > 1 {
		t.Errorf("monotonic losses: rsi = %.2f, want near 0", rsi)
	}
}

func TestRSI_Bounds(t *testing.T) {
	seqs := [][]float64{
		{5, 9, 2, 8, 1, 7, 3, 9, 4, 6, 2, 8, 5, 9, 1, 7, 4, 6},
		{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
		{1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1, 1e9, 1},
	}
	for i, closes := range seqs {
		rsi, ok := RSI(closes, 14)
		if !ok {
			t.Fatalf("seq %d: expected RSI available", i)
		}
		if rsi < 0 || rsi > 100 {
			t.Errorf("seq %d: rsi %.2f out of [0,100]", i, rsi)
		}
	}
}

func TestRSI_FlatSeriesUsesInfinityConvention(t *testing.T) {
	// No losses at all: avgLoss stays 0 and the ratio-100 convention applies.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}
	rsi, ok := RSI(closes, 14)
	if !ok {
		t.Fatal("expected RSI available")
	}
	if rsi < 99 {
		t.Errorf("flat series: rsi = %.2f, want near 100", rsi)
	}
}
