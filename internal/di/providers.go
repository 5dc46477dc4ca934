package di

import (
	"fmt"
	"time"

	"GoldView/internal/domain/repository"
	"GoldView/internal/handler/api"
	"GoldView/internal/report"
	"GoldView/internal/service/cache"
	"GoldView/internal/service/upstream"
	"GoldView/internal/usecase"
	"GoldView/pkg/config"
	"GoldView/pkg/metrics"
	"GoldView/pkg/server"
	xhttp "GoldView/pkg/http"
	xlogger "GoldView/pkg/logger"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	// Retained warn/error window backing GET /api/logs.
	l.AddCollector(&xlogger.CollectionConfig{
		MaxEntries: 200,
		MaxAge:     24 * time.Hour,
	})
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideUpstreamClient creates the report API client.
func ProvideUpstreamClient(cfg *config.Config) *upstream.Client {
	return upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
}

// ProvideReportSource exposes the upstream client as the report source.
func ProvideReportSource(client *upstream.Client) repository.ReportSource {
	return client
}

// ProvideReportLoader creates the view loading use case.
func ProvideReportLoader(
	src repository.ReportSource,
	m repository.Metrics,
	l *xlogger.Logger,
) *usecase.ReportLoader {
	return usecase.NewReportLoader(src, m, l)
}

// ProvideQuoteCache creates the quote TTL cache.
func ProvideQuoteCache() *cache.TTLCache {
	return cache.NewTTLCache()
}

// ProvideLivePoller creates the live price poller, or nil when disabled.
func ProvideLivePoller(
	cfg *config.Config,
	client *upstream.Client,
	qc *cache.TTLCache,
	m repository.Metrics,
	l *xlogger.Logger,
) *usecase.LivePoller {
	if !cfg.Live.Enabled {
		return nil
	}
	return usecase.NewLivePoller(
		client,
		qc,
		m,
		l,
		cfg.Live.Symbol,
		cfg.Live.PollInterval,
		cfg.Live.CacheTTL,
	)
}

// ProvideViewConfigs builds the classifier config per view name. Built-in
// presets apply first; configured views override or extend them.
func ProvideViewConfigs(cfg *config.Config) (map[string]report.Config, error) {
	views := make(map[string]report.Config, len(cfg.Views))
	for _, name := range report.PresetNames() {
		preset, _ := report.PresetConfig(name)
		views[name] = preset
	}
	for name, v := range cfg.Views {
		var mode report.AggregationMode
		switch v.Aggregation {
		case "direction":
			mode = report.AggregateByDirection
		case "recommendation":
			mode = report.AggregateByRecommendation
		default:
			return nil, fmt.Errorf("view %s: unknown aggregation '%s'", name, v.Aggregation)
		}
		views[name] = report.Config{
			ScoreStrongThreshold: v.ScoreStrongThreshold,
			Aggregation:          mode,
		}
	}
	return views, nil
}

// ProvideViewHandler creates the Echo handler serving all routes.
func ProvideViewHandler(
	l *xlogger.Logger,
	loader *usecase.ReportLoader,
	src repository.ReportSource,
	poller *usecase.LivePoller,
	views map[string]report.Config,
) xhttp.Handler {
	return api.NewViewEchoHandler(l, loader, src, poller, views)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *xlogger.Logger,
	handler xhttp.Handler,
	poller *usecase.LivePoller,
) *server.App {
	return server.New(cfg, l, handler, poller)
}
