package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"GoldView/internal/domain/models"
)

func TestResolveExactKeyWinsOverFuzzy(t *testing.T) {
	rec := models.NewRecord(
		"direction_hint", "bearish",
		"nakshatra_bias", "Bullish",
	)

	got := Resolve(rec, []string{"nakshatra_bias"}, []string{"direction"}, "")
	require.Equal(t, "Bullish", got)
}

func TestResolveExactKeyOrder(t *testing.T) {
	rec := models.NewRecord(
		"bias", "second choice",
		"astro_bias", "first choice",
	)

	got := Resolve(rec, []string{"astro_bias", "bias"}, nil, "")
	require.Equal(t, "first choice", got)
}

func TestResolveSkipsEmptyExactValue(t *testing.T) {
	rec := models.NewRecord(
		"nakshatra_bias", "",
		"bias", "bearish",
	)

	got := Resolve(rec, []string{"nakshatra_bias", "bias"}, nil, "")
	require.Equal(t, "bearish", got)
}

func TestResolveNumericZeroIsNotEmpty(t *testing.T) {
	rec := models.NewRecord("score", float64(0))

	got := Resolve(rec, []string{"score"}, nil, "missing")
	require.Equal(t, float64(0), got)
}

func TestResolveFuzzyUsesRecordOrder(t *testing.T) {
	// Two fuzzy candidates; the record's own entry order decides,
	// not the order of the fuzzy parts.
	rec := models.NewRecord(
		"my_direction", "up",
		"some_bias", "down",
	)

	got := Resolve(rec, nil, []string{"bias", "direction"}, "")
	require.Equal(t, "up", got)
}

func TestResolveFuzzyIsCaseInsensitive(t *testing.T) {
	rec := models.NewRecord("Astro_BIAS_v2", "bearish trend")

	got := Resolve(rec, nil, []string{"bias"}, "")
	require.Equal(t, "bearish trend", got)
}

func TestResolveFallback(t *testing.T) {
	rec := models.NewRecord("unrelated", "value")

	got := Resolve(rec, []string{"missing"}, []string{"nothing"}, "fallback")
	require.Equal(t, "fallback", got)
}

func TestResolveFuzzySkipsEmptyEntries(t *testing.T) {
	rec := models.NewRecord(
		"first_bias", "",
		"second_bias", "bullish",
	)

	got := Resolve(rec, nil, []string{"bias"}, "")
	require.Equal(t, "bullish", got)
}

func TestRecordPreservesJSONOrder(t *testing.T) {
	var rec models.Record
	err := json.Unmarshal([]byte(`{"z_bias":"late","a_direction":"early"}`), &rec)
	require.NoError(t, err)
	require.Equal(t, []string{"z_bias", "a_direction"}, rec.Keys())

	// Fuzzy resolution must follow wire order, not sorted map order.
	got := Resolve(rec, nil, []string{"bias", "direction"}, "")
	require.Equal(t, "late", got)
}

func TestResolveFieldsBearishFuzzyScenario(t *testing.T) {
	var rec models.Record
	err := json.Unmarshal([]byte(`{"bias":"bearish trend"}`), &rec)
	require.NoError(t, err)

	fields := ResolveFields(rec)
	require.Equal(t, "bearish trend", fields.DirectionRaw)

	tags := Classify(fields, Config{ScoreStrongThreshold: 8.0})
	require.Equal(t, models.DirectionBear, tags.Direction)
	require.False(t, tags.Strong)
}
