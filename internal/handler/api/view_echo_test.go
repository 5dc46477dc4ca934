package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	models "GoldView/internal/domain/models"
	"GoldView/internal/report"
	"GoldView/internal/usecase"
	xlogger "GoldView/pkg/logger"
)

type fixedSource struct {
	rep *models.Report
	err error
}

func (s *fixedSource) FetchReport(ctx context.Context, date, session, clientTZ, timeframe string) (*models.Report, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rep, nil
}

func (s *fixedSource) CSVURL(date, session, clientTZ, timeframe string) string {
	return "http://upstream/api/reports/" + date + "/csv"
}

func newTestHandler(t *testing.T, src *fixedSource) *ViewEchoHandler {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	loader := usecase.NewReportLoader(src, nil, l)
	views := map[string]report.Config{
		"daily":    {ScoreStrongThreshold: 8.0, Aggregation: report.AggregateByDirection},
		"intraday": {ScoreStrongThreshold: 9.0, Aggregation: report.AggregateByRecommendation},
	}
	return NewViewEchoHandler(l, loader, src, nil, views)
}

func doView(t *testing.T, h *ViewEchoHandler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.View(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestViewReturnsRowsSummariesAndCSVLink(t *testing.T) {
	src := &fixedSource{rep: &models.Report{
		Date: "2026-08-24",
		Sessions: map[string][]models.Record{
			"london": {
				models.NewRecord("time_utc", "08:00", "nakshatra_bias", "Strong Bullish", "nakshatra_score", 8.5),
			},
		},
	}}
	h := newTestHandler(t, src)

	_, body := doView(t, h, "/api/view?date=2026-08-24&session=london&preset=daily")
	require.EqualValues(t, 200, body["status"])

	data := body["data"].(map[string]any)
	require.Equal(t, "2026-08-24", data["date"])
	require.Equal(t, "http://upstream/api/reports/2026-08-24/csv", data["csv_url"])

	sessions := data["sessions"].([]any)
	require.Len(t, sessions, 1)
	summaries := data["summaries"].([]any)
	first := summaries[0].(map[string]any)
	require.EqualValues(t, 1, first["bull"])
	require.EqualValues(t, 1, first["strong"])
}

func TestViewRequiresDate(t *testing.T) {
	h := newTestHandler(t, &fixedSource{rep: &models.Report{Sessions: map[string][]models.Record{}}})

	_, body := doView(t, h, "/api/view")
	require.EqualValues(t, 400, body["status"])
}

func TestViewUnknownPresetRejected(t *testing.T) {
	h := newTestHandler(t, &fixedSource{rep: &models.Report{Sessions: map[string][]models.Record{}}})

	_, body := doView(t, h, "/api/view?date=2026-08-24&preset=weekly")
	require.EqualValues(t, 400, body["status"])
}

func TestViewNoDataBecomesPlaceholderStatus(t *testing.T) {
	src := &fixedSource{rep: &models.Report{Date: "2026-08-24", Sessions: map[string][]models.Record{}}}
	h := newTestHandler(t, src)

	_, body := doView(t, h, "/api/view?date=2026-08-24&preset=daily")
	require.EqualValues(t, 404, body["status"])
}

func TestViewUpstreamErrorSurfacesOnce(t *testing.T) {
	src := &fixedSource{err: context.DeadlineExceeded}
	h := newTestHandler(t, src)

	_, body := doView(t, h, "/api/view?date=2026-08-24&preset=daily")
	require.EqualValues(t, 502, body["status"])
}

func TestLiveWithoutPollerIs404(t *testing.T) {
	h := newTestHandler(t, &fixedSource{rep: &models.Report{Sessions: map[string][]models.Record{}}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/live", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Live(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 404, body["status"])
}
