package models

// LiveQuote is the upstream live-price payload. Only PriceLast is
// guaranteed; everything else is provider-dependent.
type LiveQuote struct {
	Symbol       string  `json:"symbol,omitempty"`
	PriceLast    float64 `json:"price_last"`
	PriceOpen    float64 `json:"price_open,omitempty"`
	PrevClose    float64 `json:"prev_close,omitempty"`
	Provider     string  `json:"provider_primary,omitempty"`
	TimestampUTC int64   `json:"timestamp_utc,omitempty"`
}
