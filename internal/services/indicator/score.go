package indicator

import (
	"math"

	"OracleScan/internal/domain/models"
)

// Stance labels by composite score.
const (
	StanceBullish = "BULLISH"
	StanceUptrend = "UPTREND"
	StanceRisk    = "RISK / CHOP"
)

// BullScore blends 24h momentum, RSI positioning and the volume ratio into a
// heuristic 0..100 integer. rsi is nil when the indicator is unavailable; the
// RSI term then contributes nothing.
func BullScore(change24h float64, rsi *float64, volRatio float64) int {
	s := 50.0

	// momentum
	s += Clamp(change24h, -10, 10) * 2.2

	// RSI sweet spot: 50-65 is a healthy bull; too high means overheated.
	// 75-80 is a deliberate neutral band.
	if rsi != nil {
		switch r := *rsi; {
		case r >= 50 && r <= 65:
			s += 18
		case r > 65 && r <= 75:
			s += 8
		case r < 40:
			s -= 12
		case r > 80:
			s -= 10
		}
	}

	// volume pop
	s += Clamp((volRatio-1)*20, -12, 18)

	return int(Clamp(math.Round(s), 0, 100))
}

// StanceFor maps a composite score to its stance label and tone.
func StanceFor(score int) (string, models.Tone) {
	switch {
	case score >= 75:
		return StanceBullish, models.ToneGood
	case score >= 55:
		return StanceUptrend, models.ToneWarn
	default:
		return StanceRisk, models.ToneBad
	}
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
