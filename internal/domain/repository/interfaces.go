package repository

import (
	"context"

	"GoldView/internal/domain/models"
)

// ReportSource fetches one day's report from the upstream
// signal-generation service. Implementations make a single attempt; retry
// policy is deliberately out of scope.
type ReportSource interface {
	FetchReport(ctx context.Context, date, session, clientTZ, timeframe string) (*models.Report, error)
	CSVURL(date, session, clientTZ, timeframe string) string
}

// QuoteSource fetches the current live price for a symbol.
type QuoteSource interface {
	FetchLivePrice(ctx context.Context, symbol string) (*models.LiveQuote, error)
}

// Metrics is the recording surface the use cases emit to.
type Metrics interface {
	RecordFetch(status string)
	RecordError(kind string)
	RecordStaleDrop()
	RecordRowsRendered(n int)
	RecordLivePrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
