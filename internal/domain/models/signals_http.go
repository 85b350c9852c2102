package models

// Requests and envelopes for the scan HTTP endpoint. Defined in domain for
// consistency and reuse.

// ScanRequest carries the requested symbol list. An empty list falls back to
// the default set, which handlers may seed from config before binding.
type ScanRequest struct {
	Symbols string `query:"symbols" json:"symbols" default:"btc,eth,sol" validate:"max=256"`
}

// ScanResponse is the success envelope.
type ScanResponse struct {
	OK      bool           `json:"ok"`
	Symbols []string       `json:"symbols"`
	Data    []SignalResult `json:"data"`
	TS      int64          `json:"ts"`
}

// ScanErrorResponse is the failure envelope, served with HTTP 502.
type ScanErrorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
