package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"GoldView/internal/domain/models"
	"GoldView/internal/domain/repository"
	"GoldView/internal/report"
	xlogger "GoldView/pkg/logger"
)

// ErrStaleResponse marks a report response that arrived after a newer
// load had already been issued. The response is discarded, never shown.
var ErrStaleResponse = errors.New("report response superseded by a newer load")

// ViewQuery identifies one report load.
type ViewQuery struct {
	Date      string
	Session   string
	ClientTZ  string
	Timeframe string
}

// ReportLoader orchestrates fetch → resolve → classify → aggregate for
// explicit loads and holds the currently displayed view.
//
// Loads are not cancelled when a newer one is issued; instead every load
// gets a monotonically increasing sequence number and a response is
// applied only if it is still the most recently issued. Without this, a
// slow early response would silently overwrite a fast later one.
type ReportLoader struct {
	src     repository.ReportSource
	metrics repository.Metrics
	logger  *xlogger.Logger

	seq uint64 // last issued, atomic

	mu         sync.RWMutex
	appliedSeq uint64
	current    *models.RenderedView
}

func NewReportLoader(src repository.ReportSource, metrics repository.Metrics, logger *xlogger.Logger) *ReportLoader {
	return &ReportLoader{src: src, metrics: metrics, logger: logger}
}

// Load fetches and renders one report. Transport and shape errors
// propagate to the caller as the sole visible status for the pass;
// per-record gaps were already absorbed during rendering.
func (l *ReportLoader) Load(ctx context.Context, q ViewQuery, cfg report.Config) (*models.RenderedView, error) {
	seq := atomic.AddUint64(&l.seq, 1)

	start := time.Now()
	rep, err := l.src.FetchReport(ctx, q.Date, q.Session, q.ClientTZ, q.Timeframe)
	if l.metrics != nil {
		l.metrics.RecordLatency("report_fetch", time.Since(start).Seconds())
	}
	if err != nil {
		l.recordFetch("error")
		l.recordError("fetch")
		return nil, err
	}

	view, err := report.Render(rep, cfg)
	if err != nil {
		l.recordFetch("ok")
		return nil, err
	}

	l.mu.Lock()
	if seq != atomic.LoadUint64(&l.seq) || seq <= l.appliedSeq {
		l.mu.Unlock()
		l.recordFetch("stale")
		if l.metrics != nil {
			l.metrics.RecordStaleDrop()
		}
		if l.logger != nil {
			l.logger.Warn("stale report response dropped",
				xlogger.String("date", q.Date),
				xlogger.Uint64("seq", seq),
			)
		}
		return nil, ErrStaleResponse
	}
	l.appliedSeq = seq
	l.current = view
	l.mu.Unlock()

	l.recordFetch("ok")
	if l.metrics != nil {
		rows := 0
		for _, s := range view.Sessions {
			rows += len(s.Rows)
		}
		l.metrics.RecordRowsRendered(rows)
	}
	if l.logger != nil {
		l.logger.Info("report view applied",
			xlogger.String("date", view.Date),
			xlogger.Int("sessions", len(view.Sessions)),
		)
	}
	return view, nil
}

// Current returns the most recently applied view, or nil before the
// first successful load.
func (l *ReportLoader) Current() *models.RenderedView {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *ReportLoader) recordFetch(status string) {
	if l.metrics != nil {
		l.metrics.RecordFetch(status)
	}
}

func (l *ReportLoader) recordError(kind string) {
	if l.metrics != nil {
		l.metrics.RecordError(kind)
	}
}
