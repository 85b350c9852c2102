package models

// MarketSnapshot is one row of the provider's batched markets endpoint.
type MarketSnapshot struct {
	ID        string
	Symbol    string
	Name      string
	Price     float64
	MarketCap float64
	Vol24h    float64
	Change24h float64 // percent
}

// Chart holds an asset's hourly price and volume series over the scan
// window. Used only to derive indicators, then discarded.
type Chart struct {
	Prices  []float64
	Volumes []float64
}
