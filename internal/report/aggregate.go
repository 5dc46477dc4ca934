package report

import (
	"errors"

	"GoldView/internal/domain/models"
)

// ErrNoData marks a report whose session set is empty. Callers surface it
// as a user-visible placeholder instead of rendering an empty table.
var ErrNoData = errors.New("report contains no session data")

// AggregateSession counts one session's classified records. Records are
// processed in the given order; each increments Total and exactly one
// direction bucket, Strong independently, and in recommendation mode at
// most one recommendation bucket.
func AggregateSession(sessionKey string, records []models.Record, cfg Config) models.SessionSummary {
	sum := models.SessionSummary{Session: sessionKey}

	for _, rec := range records {
		tags := Classify(ResolveFields(rec), cfg)

		sum.Total++
		switch tags.Direction {
		case models.DirectionBull:
			sum.Bull++
		case models.DirectionBear:
			sum.Bear++
		default:
			sum.Neutral++
		}
		if tags.Strong {
			sum.Strong++
		}

		if cfg.Aggregation == AggregateByRecommendation {
			switch tags.Recommendation {
			case models.RecommendBuy:
				sum.Buy++
			case models.RecommendStrongBuy:
				sum.StrongBuy++
			case models.RecommendSell:
				sum.Sell++
			case models.RecommendStrongSell:
				sum.StrongSell++
			}
		}
	}

	return sum
}

// Aggregate summarizes every session present in the report. A session key
// with zero records still yields a zero summary; an empty session set is
// ErrNoData.
func Aggregate(rep *models.Report, cfg Config) (map[string]models.SessionSummary, error) {
	if len(rep.Sessions) == 0 {
		return nil, ErrNoData
	}

	out := make(map[string]models.SessionSummary, len(rep.Sessions))
	for key, records := range rep.Sessions {
		out[key] = AggregateSession(key, records, cfg)
	}
	return out, nil
}
