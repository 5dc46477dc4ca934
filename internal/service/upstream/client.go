// Package upstream is the client for the external signal-generation
// service that owns report computation. This service only consumes its
// JSON; nothing here interprets signal values.
package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"GoldView/internal/domain/models"
	xhttp "GoldView/pkg/http"
)

// Client fetches reports and live quotes from the upstream API.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

// New creates an upstream API client. baseURL is the service root without
// a trailing slash.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// FetchReport retrieves one day's report. One attempt, no retry. Non-2xx
// responses surface the status code and a truncated body; a payload
// without a sessions object is a shape error and fails the whole pass.
func (c *Client) FetchReport(ctx context.Context, date, session, clientTZ, timeframe string) (*models.Report, error) {
	var rep models.Report
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/api/reports/%s", c.baseURL, url.PathEscape(date)),
		QueryParams: reportQuery(session, clientTZ, timeframe),
	}, &rep)
	if err != nil {
		return nil, fmt.Errorf("fetch report %s: %w", date, err)
	}

	if rep.Sessions == nil {
		return nil, fmt.Errorf("fetch report %s: malformed payload: missing sessions", date)
	}
	return &rep, nil
}

// FetchLivePrice retrieves the current quote for a symbol.
func (c *Client) FetchLivePrice(ctx context.Context, symbol string) (*models.LiveQuote, error) {
	var q models.LiveQuote
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/api/live_price",
		QueryParams: map[string][]string{"symbol": {symbol}},
	}, &q)
	if err != nil {
		return nil, fmt.Errorf("fetch live price %s: %w", symbol, err)
	}
	q.Symbol = symbol
	return &q, nil
}

// CSVURL assembles the download link for the CSV rendition of a report.
// The link carries the same query parameters as the JSON call and is
// never fetched by this service.
func (c *Client) CSVURL(date, session, clientTZ, timeframe string) string {
	u := fmt.Sprintf("%s/api/reports/%s/csv", c.baseURL, url.PathEscape(date))
	if q := url.Values(reportQuery(session, clientTZ, timeframe)).Encode(); q != "" {
		u += "?" + q
	}
	return u
}

func reportQuery(session, clientTZ, timeframe string) map[string][]string {
	params := map[string][]string{}
	if session != "" {
		params["session"] = []string{session}
	}
	if clientTZ != "" {
		params["client_tz"] = []string{clientTZ}
	}
	if timeframe != "" {
		params["timeframe"] = []string{timeframe}
	}
	return params
}
