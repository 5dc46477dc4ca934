package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchReportSendsQueryParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2026-08-24","sessions":{"london":[{"nakshatra_bias":"Bullish"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	rep, err := c.FetchReport(context.Background(), "2026-08-24", "london", "Europe/London", "1h")
	require.NoError(t, err)

	require.Equal(t, "/api/reports/2026-08-24", gotPath)
	require.Equal(t, []string{"london"}, gotQuery["session"])
	require.Equal(t, []string{"Europe/London"}, gotQuery["client_tz"])
	require.Equal(t, []string{"1h"}, gotQuery["timeframe"])

	require.Equal(t, "2026-08-24", rep.Date)
	require.Len(t, rep.Sessions["london"], 1)
}

func TestFetchReportNon2xxTruncatesBody(t *testing.T) {
	longBody := strings.Repeat("x", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(longBody))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.FetchReport(context.Background(), "2026-08-24", "", "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), strings.Repeat("x", 200))
	require.NotContains(t, err.Error(), strings.Repeat("x", 201))
}

func TestFetchReportMissingSessionsIsShapeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"date":"2026-08-24"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	_, err := c.FetchReport(context.Background(), "2026-08-24", "", "", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing sessions")
}

func TestFetchLivePrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "XAUUSD", r.URL.Query().Get("symbol"))
		_, _ = w.Write([]byte(`{"price_last":2411.5,"prev_close":2399.0,"provider_primary":"finnhub","timestamp_utc":1766600000}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)
	q, err := c.FetchLivePrice(context.Background(), "XAUUSD")
	require.NoError(t, err)
	require.Equal(t, 2411.5, q.PriceLast)
	require.Equal(t, "finnhub", q.Provider)
	require.Equal(t, "XAUUSD", q.Symbol)
}

func TestCSVURLAssembly(t *testing.T) {
	c := New("http://upstream:9000/", time.Second)

	u := c.CSVURL("2026-08-24", "asia", "Asia/Tokyo", "1h")
	require.Equal(t, "http://upstream:9000/api/reports/2026-08-24/csv?client_tz=Asia%2FTokyo&session=asia&timeframe=1h", u)

	// Empty params drop out of the query string entirely.
	u = c.CSVURL("2026-08-24", "", "", "")
	require.Equal(t, "http://upstream:9000/api/reports/2026-08-24/csv", u)
}
