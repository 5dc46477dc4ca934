package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"GoldView/internal/domain/models"
)

func TestRenderPreservesRecordOrder(t *testing.T) {
	rep := &models.Report{
		Date: "2026-08-24",
		Sessions: map[string][]models.Record{
			"london": {
				models.NewRecord("time_utc", "08:00", "nakshatra_bias", "Bullish"),
				models.NewRecord("time_utc", "09:00", "nakshatra_bias", "Bearish"),
				models.NewRecord("time_utc", "10:00", "nakshatra_bias", "Neutral"),
			},
		},
	}

	view, err := Render(rep, Config{ScoreStrongThreshold: 8.0})
	require.NoError(t, err)
	require.Len(t, view.Sessions, 1)

	rows := view.Sessions[0].Rows
	require.Equal(t, []string{"08:00", "09:00", "10:00"},
		[]string{rows[0].TimeUTC, rows[1].TimeUTC, rows[2].TimeUTC})
}

func TestRenderSessionOrderAndSummaries(t *testing.T) {
	rep := &models.Report{
		Date: "2026-08-24",
		Sessions: map[string][]models.Record{
			"newyork": {biasRecord("Bullish")},
			"sydney":  {biasRecord("Bearish")},
			"london":  {},
			"zurich":  {biasRecord("flat")},
		},
	}

	view, err := Render(rep, Config{})
	require.NoError(t, err)

	order := make([]string, 0, len(view.Sessions))
	for _, s := range view.Sessions {
		order = append(order, s.Session)
	}
	require.Equal(t, []string{"sydney", "london", "newyork", "zurich"}, order)

	// Summaries travel in the same order as the row groups.
	require.Len(t, view.Summaries, 4)
	for i, s := range view.Sessions {
		require.Equal(t, s.Session, view.Summaries[i].Session)
	}
}

func TestRenderRowDegradesGapsToFallbacks(t *testing.T) {
	rep := &models.Report{
		Date: "2026-08-24",
		Sessions: map[string][]models.Record{
			"asia": {
				models.NewRecord("nakshatra_score", "not-a-number"),
				models.NewRecord("nakshatra_bias", "Bullish", "nakshatra_score", "9.25"),
			},
		},
	}

	view, err := Render(rep, Config{ScoreStrongThreshold: 8.0})
	require.NoError(t, err)

	rows := view.Sessions[0].Rows
	// A malformed record renders placeholders but never blocks its neighbors.
	require.Equal(t, ScorePlaceholder, rows[0].Score)
	require.Equal(t, models.DirectionNeutral, rows[0].Tags.Direction)
	require.Equal(t, "9.25", rows[1].Score)
	require.Equal(t, models.DirectionBull, rows[1].Tags.Direction)
}

func TestRenderNoDataPropagates(t *testing.T) {
	rep := &models.Report{Date: "2026-08-24", Sessions: map[string][]models.Record{}}

	_, err := Render(rep, Config{})
	require.ErrorIs(t, err, ErrNoData)
}

func TestRenderFullPayloadRoundTrip(t *testing.T) {
	payload := `{
		"date": "2026-08-24",
		"sessions": {
			"london": [
				{
					"session": "london",
					"time_client": "09:00",
					"time_utc": "08:00",
					"nakshatra": "Pushya",
					"nakshatra_pada": 2,
					"nakshatra_bias": "Strong Bullish",
					"gold_signal_score": 8.5,
					"trade_recommendation": "STRONG BUY",
					"position_size_percentage": "100%",
					"hora_ruler": "Jupiter"
				}
			]
		}
	}`

	var rep models.Report
	require.NoError(t, json.Unmarshal([]byte(payload), &rep))

	view, err := Render(&rep, Config{ScoreStrongThreshold: 8.0, Aggregation: AggregateByRecommendation})
	require.NoError(t, err)

	row := view.Sessions[0].Rows[0]
	require.Equal(t, "Pushya", row.Entity)
	require.Equal(t, "2", row.SubIndex)
	require.Equal(t, "8.50", row.Score)
	require.Equal(t, "Jupiter", row.HoraRuler)
	require.True(t, row.Tags.Strong)
	require.True(t, row.Tags.ScoreStrong)
	require.True(t, row.Tags.PositionFull)
	require.Equal(t, models.RecommendStrongBuy, row.Tags.Recommendation)

	sum := view.Summaries[0]
	require.Equal(t, 1, sum.StrongBuy)
	require.Equal(t, 0, sum.Buy)
}
