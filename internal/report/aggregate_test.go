package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"GoldView/internal/domain/models"
)

func biasRecord(bias string) models.Record {
	return models.NewRecord("nakshatra_bias", bias)
}

func TestAggregateSessionDirectionInvariant(t *testing.T) {
	records := []models.Record{
		biasRecord("Bullish"),
		biasRecord("Strong Bullish"),
		biasRecord("bearish"),
		biasRecord("flat"),
		biasRecord(""),
	}

	sum := AggregateSession("london", records, Config{Aggregation: AggregateByDirection})
	require.Equal(t, "london", sum.Session)
	require.Equal(t, 5, sum.Total)
	require.Equal(t, 2, sum.Bull)
	require.Equal(t, 1, sum.Bear)
	require.Equal(t, 2, sum.Neutral)
	require.Equal(t, sum.Total, sum.Bull+sum.Bear+sum.Neutral)
	require.Equal(t, 1, sum.Strong)
	require.LessOrEqual(t, sum.Strong, sum.Total)
}

func TestAggregateSessionRecommendationBuckets(t *testing.T) {
	records := []models.Record{
		models.NewRecord("trade_recommendation", "STRONG SELL"),
		models.NewRecord("trade_recommendation", "BUY"),
		models.NewRecord("trade_recommendation", "STRONG BUY SIGNAL"),
		models.NewRecord("trade_recommendation", "hold"),
	}

	sum := AggregateSession("asia", records, Config{Aggregation: AggregateByRecommendation})
	require.Equal(t, 4, sum.Total)
	require.Equal(t, 1, sum.Buy)
	require.Equal(t, 1, sum.StrongBuy)
	require.Equal(t, 0, sum.Sell, "STRONG SELL must not leak into the sell bucket")
	require.Equal(t, 1, sum.StrongSell)
	require.LessOrEqual(t, sum.Buy+sum.StrongBuy+sum.Sell+sum.StrongSell, sum.Total)
}

func TestAggregateSessionDirectionModeSkipsRecommendationBuckets(t *testing.T) {
	records := []models.Record{models.NewRecord("trade_recommendation", "BUY")}

	sum := AggregateSession("asia", records, Config{Aggregation: AggregateByDirection})
	require.Equal(t, 0, sum.Buy+sum.StrongBuy+sum.Sell+sum.StrongSell)
}

func TestAggregateEmptySessionStillSummarized(t *testing.T) {
	rep := &models.Report{
		Date: "2026-08-24",
		Sessions: map[string][]models.Record{
			"london": {biasRecord("Bullish")},
			"asia":   {},
		},
	}

	sums, err := Aggregate(rep, Config{})
	require.NoError(t, err)
	require.Len(t, sums, 2)
	require.Equal(t, 0, sums["asia"].Total)
}

func TestAggregateNoSessionsIsErrNoData(t *testing.T) {
	rep := &models.Report{Date: "2026-08-24", Sessions: map[string][]models.Record{}}

	_, err := Aggregate(rep, Config{})
	require.ErrorIs(t, err, ErrNoData)
}
