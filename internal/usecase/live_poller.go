package usecase

import (
	"context"
	"sync"
	"time"

	"GoldView/internal/domain/models"
	"GoldView/internal/domain/repository"
	"GoldView/internal/service/cache"
	xlogger "GoldView/pkg/logger"
)

// LivePoller polls the upstream live price on a fixed interval, keeps the
// last quote in a TTL cache, and fans it out to stream subscribers. It is
// independent of report loads and shares no state with them.
type LivePoller struct {
	src      repository.QuoteSource
	cache    *cache.TTLCache
	metrics  repository.Metrics
	logger   *xlogger.Logger
	symbol   string
	interval time.Duration
	ttl      time.Duration

	mu   sync.Mutex
	subs map[chan *models.LiveQuote]struct{}
}

func NewLivePoller(
	src repository.QuoteSource,
	quoteCache *cache.TTLCache,
	metrics repository.Metrics,
	logger *xlogger.Logger,
	symbol string,
	interval, ttl time.Duration,
) *LivePoller {
	return &LivePoller{
		src:      src,
		cache:    quoteCache,
		metrics:  metrics,
		logger:   logger,
		symbol:   symbol,
		interval: interval,
		ttl:      ttl,
		subs:     make(map[chan *models.LiveQuote]struct{}),
	}
}

// Start runs the poll loop until ctx is cancelled. A failed poll logs and
// waits for the next tick; there is no retry inside an interval.
func (p *LivePoller) Start(ctx context.Context) error {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *LivePoller) poll(ctx context.Context) {
	q, err := p.src.FetchLivePrice(ctx, p.symbol)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("live_price")
		}
		if p.logger != nil {
			p.logger.Warn("live price poll failed", xlogger.Error(err))
		}
		return
	}

	p.cache.Set(p.cacheKey(), q, p.ttl)
	if p.metrics != nil {
		p.metrics.RecordLivePrice(q.Symbol, q.PriceLast)
	}
	p.broadcast(q)
}

// Last returns the cached quote, if one is fresh enough.
func (p *LivePoller) Last() (*models.LiveQuote, bool) {
	v, ok := p.cache.Get(p.cacheKey())
	if !ok {
		return nil, false
	}
	q, ok := v.(*models.LiveQuote)
	return q, ok
}

// Subscribe registers a stream consumer. The channel is buffered; slow
// consumers drop updates rather than block the poll loop.
func (p *LivePoller) Subscribe() chan *models.LiveQuote {
	ch := make(chan *models.LiveQuote, 8)
	p.mu.Lock()
	p.subs[ch] = struct{}{}
	p.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a stream consumer.
func (p *LivePoller) Unsubscribe(ch chan *models.LiveQuote) {
	p.mu.Lock()
	if _, ok := p.subs[ch]; ok {
		delete(p.subs, ch)
		close(ch)
	}
	p.mu.Unlock()
}

func (p *LivePoller) broadcast(q *models.LiveQuote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for ch := range p.subs {
		select {
		case ch <- q:
		default:
			// drop on backpressure
		}
	}
}

func (p *LivePoller) cacheKey() string { return "live:" + p.symbol }
