package report

import (
	"fmt"
	"strconv"
	"strings"

	"GoldView/internal/domain/models"
)

// AggregationMode selects which tag family the session summaries count.
type AggregationMode string

const (
	AggregateByDirection      AggregationMode = "direction"
	AggregateByRecommendation AggregationMode = "recommendation"
)

// Config is per-view classification policy. The two producer views run
// different score thresholds and different aggregation semantics; both
// are legitimate, so neither is hardcoded.
type Config struct {
	ScoreStrongThreshold float64
	Aggregation          AggregationMode
}

// ScorePlaceholder is rendered when a score value does not parse.
const ScorePlaceholder = "N/A"

// Classify derives the orthogonal tag set from resolved field values.
// All text checks are case-insensitive substring tests on the raw value.
// Classification never fails: unparseable or unmatched values fall
// through to their none/neutral branch.
func Classify(f models.ResolvedFields, cfg Config) models.Classification {
	var c models.Classification

	bias := strings.ToLower(f.DirectionRaw)
	switch {
	case strings.Contains(bias, "bull"):
		c.Direction = models.DirectionBull
	case strings.Contains(bias, "bear"):
		c.Direction = models.DirectionBear
	default:
		c.Direction = models.DirectionNeutral
	}
	// Strength is orthogonal: "Strong Bullish" is both bull and strong.
	c.Strong = strings.Contains(bias, "strong")

	c.Quality = classifyQuality(f.Quality)
	c.Recommendation = classifyRecommendation(f.RecommendationRaw)

	c.Score, c.ScoreOK = parseScore(f.ScoreRaw)
	if c.ScoreOK {
		c.ScoreText = fmt.Sprintf("%.2f", c.Score)
		c.ScoreStrong = c.Score >= cfg.ScoreStrongThreshold
	} else {
		c.ScoreText = ScorePlaceholder
	}

	c.PositionFull = positionFull(f.PositionSize)

	return c
}

// classifyQuality maps the quality text to soft/sharp/none. Soft markers
// are checked first and win when a value carries both.
func classifyQuality(raw string) models.QualityTag {
	q := strings.ToLower(raw)
	switch {
	case strings.Contains(q, "soft"), strings.Contains(q, "mridu"):
		return models.QualitySoft
	case strings.Contains(q, "sharp"), strings.Contains(q, "tikshna"):
		return models.QualitySharp
	default:
		return models.QualityNone
	}
}

// classifyRecommendation runs the exclusive five-way chain. The long
// qualifiers must be tested before the bare verbs because "BUY" is a
// substring of "STRONG BUY"; the first hit wins.
func classifyRecommendation(raw string) models.Recommendation {
	r := strings.ToUpper(raw)
	switch {
	case strings.Contains(r, "STRONG BUY"):
		return models.RecommendStrongBuy
	case strings.Contains(r, "STRONG SELL"):
		return models.RecommendStrongSell
	case strings.Contains(r, "BUY"):
		return models.RecommendBuy
	case strings.Contains(r, "SELL"):
		return models.RecommendSell
	default:
		return models.RecommendNone
	}
}

// parseScore accepts the number-or-text score field. A failed parse is
// not an error; the row renders the placeholder instead.
func parseScore(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// positionFull reports a full position: the text "100%" or the number 100.
func positionFull(v any) bool {
	switch t := v.(type) {
	case string:
		return t == "100%"
	case float64:
		return t == 100
	default:
		return false
	}
}
