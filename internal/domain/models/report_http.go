package models

// Requests for the view HTTP endpoints. Defined in domain for consistency and reuse.

type ViewRequest struct {
	Date      string `query:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Session   string `query:"session" json:"session" validate:"omitempty,alphanum,max=16"`
	ClientTZ  string `query:"client_tz" json:"client_tz" validate:"omitempty,max=64"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"1h" validate:"oneof=15m 30m 1h 4h 1d"`
	Preset    string `query:"preset" json:"preset" default:"daily"`
}

type LiveRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"omitempty,max=16"`
}

// ViewResponse is the rendered view plus the CSV download link assembled
// for the same query.
type ViewResponse struct {
	Date      string           `json:"date"`
	Sessions  []SessionRows    `json:"sessions"`
	Summaries []SessionSummary `json:"summaries"`
	CSVURL    string           `json:"csv_url"`
}
