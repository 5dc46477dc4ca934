package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	reportFetches *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	staleDropped  prometheus.Counter
	rowsRendered  prometheus.Gauge
	livePrice     *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		reportFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldview_report_fetches_total",
				Help: "Total number of upstream report fetches",
			},
			[]string{"status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goldview_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		staleDropped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goldview_stale_responses_total",
				Help: "Report responses discarded because a newer load superseded them",
			},
		),
		rowsRendered: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "goldview_rows_rendered",
				Help: "Rows in the most recently rendered report view",
			},
		),
		livePrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "goldview_live_price",
				Help: "Last polled live price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goldview_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records an upstream report fetch outcome ("ok", "error", "stale").
func (r *Recorder) RecordFetch(status string) {
	r.reportFetches.WithLabelValues(status).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordStaleDrop records a discarded out-of-order report response.
func (r *Recorder) RecordStaleDrop() {
	r.staleDropped.Inc()
}

// RecordRowsRendered records the row count of the latest rendered view.
func (r *Recorder) RecordRowsRendered(n int) {
	r.rowsRendered.Set(float64(n))
}

// RecordLivePrice records the last polled price for a symbol.
func (r *Recorder) RecordLivePrice(symbol string, price float64) {
	r.livePrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
