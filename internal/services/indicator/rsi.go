package indicator

// RSI computes the Wilder-smoothed relative strength index over the given
// period from a chronological close series (oldest first).
//
// It needs at least period+2 samples: period deltas to seed the averages plus
// one confirming smoothing step. With fewer, ok is false and the indicator is
// unavailable. The function is stateless and re-derives fully from the input
// on every call.
func RSI(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+2 {
		return 0, false
	}

	// Seed average gain/loss from the first `period` deltas, losses kept as
	// positive magnitudes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		d := closes[i] - closes[i-1]
		if d >= 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	rsi := rsiFromAverages(avgGain, avgLoss)

	// Exponential smoothing over the remaining deltas.
	for i := period + 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else if d < 0 {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		rsi = rsiFromAverages(avgGain, avgLoss)
	}

	return Clamp(rsi, 0, 100), true
}

// rsiFromAverages maps smoothed averages to an RSI value. A zero average loss
// uses ratio 100 as a stand-in for infinity, biasing the result toward 100.
func rsiFromAverages(avgGain, avgLoss float64) float64 {
	rs := 100.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}
