package report

import (
	"strconv"

	"GoldView/internal/domain/models"
)

// fieldSpec binds one logical field to the key names it may travel under.
// Exact keys are authoritative producer spellings; fuzzy parts catch
// renamed variants by substring.
type fieldSpec struct {
	exact    []string
	fuzzy    []string
	fallback any
}

// The canonical logical schema. Exact spellings come from the known
// producer versions; fuzzy parts are deliberately short so future
// renames like "astro_bias_v2" still land on the right column.
var fieldSpecs = map[string]fieldSpec{
	"time_utc":           {exact: []string{"time_utc", "utc_time"}, fuzzy: []string{"utc"}, fallback: ""},
	"time_client":        {exact: []string{"time_client", "time_local", "time"}, fuzzy: []string{"local"}, fallback: ""},
	"timeframe":          {exact: []string{"timeframe", "tf"}, fuzzy: []string{"frame"}, fallback: ""},
	"entity_name":        {exact: []string{"nakshatra", "nakshatra_name", "entity"}, fuzzy: []string{"nakshatra"}, fallback: ""},
	"sub_index":          {exact: []string{"pada", "nakshatra_pada", "sub_index"}, fuzzy: []string{"pada"}, fallback: ""},
	"ruler":              {exact: []string{"ruler", "nakshatra_ruler", "lord"}, fuzzy: []string{"ruler", "lord"}, fallback: ""},
	"quality":            {exact: []string{"quality", "nakshatra_quality", "nature"}, fuzzy: []string{"quality", "nature"}, fallback: ""},
	"direction_raw":      {exact: []string{"nakshatra_bias", "astro_bias"}, fuzzy: []string{"bias", "direction"}, fallback: ""},
	"score_raw":          {exact: []string{"nakshatra_score", "gold_signal_score", "score"}, fuzzy: []string{"score"}, fallback: float64(0)},
	"trigger_planet":     {exact: []string{"trigger_planet", "trigger"}, fuzzy: []string{"trigger"}, fallback: ""},
	"rationale":          {exact: []string{"rationale", "reason", "notes"}, fuzzy: []string{"rationale", "reason"}, fallback: ""},
	"hora_ruler":         {exact: []string{"hora_ruler", "hora_lord"}, fuzzy: []string{"hora"}, fallback: ""},
	"recommendation_raw": {exact: []string{"trade_recommendation", "recommendation", "action"}, fuzzy: []string{"recommend"}, fallback: ""},
	"position_size":      {exact: []string{"position_size_percentage", "position_size"}, fuzzy: []string{"position"}, fallback: ""},
}

// ResolveFields maps one raw record onto the canonical logical schema.
func ResolveFields(rec models.Record) models.ResolvedFields {
	get := func(name string) any {
		spec := fieldSpecs[name]
		return Resolve(rec, spec.exact, spec.fuzzy, spec.fallback)
	}

	return models.ResolvedFields{
		TimeUTC:           displayString(get("time_utc")),
		TimeClient:        displayString(get("time_client")),
		Timeframe:         displayString(get("timeframe")),
		EntityName:        displayString(get("entity_name")),
		SubIndex:          displayString(get("sub_index")),
		Ruler:             displayString(get("ruler")),
		Quality:           displayString(get("quality")),
		DirectionRaw:      displayString(get("direction_raw")),
		ScoreRaw:          get("score_raw"),
		TriggerPlanet:     displayString(get("trigger_planet")),
		Rationale:         displayString(get("rationale")),
		HoraRuler:         displayString(get("hora_ruler")),
		RecommendationRaw: displayString(get("recommendation_raw")),
		PositionSize:      get("position_size"),
	}
}

// displayString renders a resolved value for a text column. JSON numbers
// arrive as float64; everything else that isn't already a string shows
// its strconv form rather than Go's %v quoting.
func displayString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
