package indicator

import (
	"testing"

	"OracleScan/internal/domain/models"
)

func f(v float64) *float64 { return &v }

func TestVolumeRatio_Defaults(t *testing.T) {
	if got := VolumeRatio(nil); got != 1 {
		t.Errorf("nil input: got %v, want 1", got)
	}
	if got := VolumeRatio([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}); got != 1 {
		t.Errorf("9 samples: got %v, want 1", got)
	}
	// trailing mean of zero stays neutral
	if got := VolumeRatio([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 50}); got != 1 {
		t.Errorf("zero trailing mean: got %v, want 1", got)
	}
}

func TestVolumeRatio_Spike(t *testing.T) {
	vols := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 20}
	if got := VolumeRatio(vols); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestBullScore_Neutral(t *testing.T) {
	if got := BullScore(0, nil, 1); got != 50 {
		t.Errorf("all neutral inputs: got %d, want 50", got)
	}
}

func TestBullScore_RSIBands(t *testing.T) {
	tests := []struct {
		rsi  float64
		want int
	}{
		{55, 68},  // +18 sweet spot
		{70, 58},  // +8 warm band
		{35, 38},  // -12 weak
		{85, 40},  // -10 overheated
		{45, 50},  // neutral gap below 50
		{78, 50},  // deliberate 75-80 neutral band
		{65, 68},  // band boundary inclusive
		{75, 58},  // upper warm boundary inclusive
	}
	for _, tt := range tests {
		if got := BullScore(0, f(tt.rsi), 1); got != tt.want {
			t.Errorf("rsi %.0f: got %d, want %d", tt.rsi, got, tt.want)
		}
	}
}

func TestBullScore_Clamped(t *testing.T) {
	if got := BullScore(50, f(60), 10); got != 100 {
		t.Errorf("max inputs: got %d, want 100", got)
	}
	if got := BullScore(-50, f(20), 1); got != 16 {
		t.Errorf("min momentum and rsi: got %d, want 16", got)
	}
	if got := BullScore(-50, f(20), -100); got != 4 {
		// volume term clamps at -12
		t.Errorf("volume floor: got %d, want 4", got)
	}
	for _, change := range []float64{-1e9, -3.3, 0, 7.7, 1e9} {
		got := BullScore(change, f(99), 5)
		if got < 0 || got > 100 {
			t.Errorf("change %v: score %d out of [0,100]", change, got)
		}
	}
}

func TestStanceFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		label string
		tone  models.Tone
	}{
		{80, StanceBullish, models.ToneGood},
		{75, StanceBullish, models.ToneGood},
		{74, StanceUptrend, models.ToneWarn},
		{60, StanceUptrend, models.ToneWarn},
		{55, StanceUptrend, models.ToneWarn},
		{54, StanceRisk, models.ToneBad},
		{30, StanceRisk, models.ToneBad},
		{0, StanceRisk, models.ToneBad},
	}
	for _, tt := range tests {
		label, tone := StanceFor(tt.score)
		if label != tt.label || tone != tt.tone {
			t.Errorf("score %d: got %q/%q, want %q/%q", tt.score, label, tone, tt.label, tt.tone)
		}
	}
}
