package models

// Tone classifies a stance for display purposes.
type Tone string

const (
	ToneGood Tone = "good"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// SignalResult is the per-asset output of a scan: the market snapshot fields
// plus the computed indicators and the composite score. Recomputed from
// scratch on every request, never persisted.
type SignalResult struct {
	ID        string   `json:"id"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	MarketCap float64  `json:"marketCap"`
	Vol24h    float64  `json:"vol24h"`
	Change24h float64  `json:"change24h"`
	RSI14     *float64 `json:"rsi14"`
	VolRatio  float64  `json:"volRatio"`
	Score     int      `json:"score"`
	Stance    string   `json:"stance"`
	Tone      Tone     `json:"tone"`
	TS        int64    `json:"ts"`
}

// ScanResult is a full scan outcome before HTTP shaping.
type ScanResult struct {
	Symbols []string
	Data    []SignalResult
	TS      int64
}
