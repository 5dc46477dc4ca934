package models

// Report is one day's upstream payload: rows grouped by session key, rows
// within a session in chronological order. The report is immutable for the
// duration of a render pass.
type Report struct {
	Date     string              `json:"date"`
	Sessions map[string][]Record `json:"sessions"`
}

// Direction is the bull/bear/neutral tag derived from a bias text.
type Direction string

const (
	DirectionBull    Direction = "bull"
	DirectionBear    Direction = "bear"
	DirectionNeutral Direction = "neutral"
)

// QualityTag classifies the nakshatra quality text.
type QualityTag string

const (
	QualitySoft  QualityTag = "soft"
	QualitySharp QualityTag = "sharp"
	QualityNone  QualityTag = "none"
)

// Recommendation is the exclusive five-way trade recommendation tag.
type Recommendation string

const (
	RecommendBuy        Recommendation = "buy"
	RecommendStrongBuy  Recommendation = "strong_buy"
	RecommendSell       Recommendation = "sell"
	RecommendStrongSell Recommendation = "strong_sell"
	RecommendNone       Recommendation = "none"
)

// ResolvedFields holds one record's values mapped onto the canonical
// logical schema. ScoreRaw and PositionSize keep their raw type because
// classification distinguishes numbers from text there.
type ResolvedFields struct {
	TimeUTC           string
	TimeClient        string
	Timeframe         string
	EntityName        string
	SubIndex          string
	Ruler             string
	Quality           string
	DirectionRaw      string
	ScoreRaw          any
	TriggerPlanet     string
	Rationale         string
	HoraRuler         string
	RecommendationRaw string
	PositionSize      any
}

// Classification is the orthogonal tag set derived per record. It is
// recomputed on every render pass and never stored.
type Classification struct {
	Direction      Direction      `json:"direction"`
	Strong         bool           `json:"strong"`
	Quality        QualityTag     `json:"quality"`
	Recommendation Recommendation `json:"recommendation"`
	Score          float64        `json:"score"`
	ScoreOK        bool           `json:"score_ok"`
	ScoreStrong    bool           `json:"score_strong"`
	ScoreText      string         `json:"score_text"`
	PositionFull   bool           `json:"position_full"`
}

// SessionSummary holds per-session aggregate counts. Bull+Bear+Neutral
// always equals Total; Strong is a non-exclusive tally; the recommendation
// buckets sum to at most Total (unmatched rows fall in no bucket).
type SessionSummary struct {
	Session    string `json:"session"`
	Total      int    `json:"total"`
	Bull       int    `json:"bull"`
	Bear       int    `json:"bear"`
	Neutral    int    `json:"neutral"`
	Strong     int    `json:"strong"`
	Buy        int    `json:"buy"`
	StrongBuy  int    `json:"strong_buy"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strong_sell"`
}

// Row is one rendered table row: display fields plus the derived tag set.
type Row struct {
	TimeUTC        string         `json:"time_utc"`
	TimeClient     string         `json:"time_client"`
	Timeframe      string         `json:"timeframe,omitempty"`
	Entity         string         `json:"entity"`
	SubIndex       string         `json:"sub_index,omitempty"`
	Ruler          string         `json:"ruler,omitempty"`
	Quality        string         `json:"quality,omitempty"`
	Bias           string         `json:"bias"`
	Score          string         `json:"score"`
	TriggerPlanet  string         `json:"trigger_planet,omitempty"`
	Rationale      string         `json:"rationale,omitempty"`
	HoraRuler      string         `json:"hora_ruler,omitempty"`
	Recommendation string         `json:"recommendation,omitempty"`
	PositionSize   string         `json:"position_size,omitempty"`
	Tags           Classification `json:"tags"`
}

// SessionRows is the rendered row list for one session, in the order the
// upstream produced them.
type SessionRows struct {
	Session string `json:"session"`
	Rows    []Row  `json:"rows"`
}

// RenderedView is the structured result of one render pass, handed to the
// UI adapter as-is. It is owned by the pass that created it and replaced
// wholesale on the next load.
type RenderedView struct {
	Date      string           `json:"date"`
	Sessions  []SessionRows    `json:"sessions"`
	Summaries []SessionSummary `json:"summaries"`
}
