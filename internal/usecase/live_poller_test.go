package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"GoldView/internal/domain/models"
	"GoldView/internal/service/cache"
)

type stubQuotes struct {
	quote *models.LiveQuote
	err   error
}

func (s *stubQuotes) FetchLivePrice(ctx context.Context, symbol string) (*models.LiveQuote, error) {
	if s.err != nil {
		return nil, s.err
	}
	q := *s.quote
	q.Symbol = symbol
	return &q, nil
}

func TestPollCachesLastQuote(t *testing.T) {
	src := &stubQuotes{quote: &models.LiveQuote{PriceLast: 2411.5, Provider: "finnhub"}}
	p := NewLivePoller(src, cache.NewTTLCache(), nil, nil, "XAUUSD", time.Minute, time.Minute)

	_, ok := p.Last()
	require.False(t, ok, "no quote before first poll")

	p.poll(context.Background())

	q, ok := p.Last()
	require.True(t, ok)
	require.Equal(t, 2411.5, q.PriceLast)
	require.Equal(t, "XAUUSD", q.Symbol)
}

func TestPollErrorKeepsPreviousQuote(t *testing.T) {
	src := &stubQuotes{quote: &models.LiveQuote{PriceLast: 2411.5}}
	p := NewLivePoller(src, cache.NewTTLCache(), nil, nil, "XAUUSD", time.Minute, time.Minute)

	p.poll(context.Background())
	src.err = errors.New("upstream down")
	p.poll(context.Background())

	q, ok := p.Last()
	require.True(t, ok)
	require.Equal(t, 2411.5, q.PriceLast)
}

func TestSubscribeReceivesBroadcast(t *testing.T) {
	src := &stubQuotes{quote: &models.LiveQuote{PriceLast: 2411.5}}
	p := NewLivePoller(src, cache.NewTTLCache(), nil, nil, "XAUUSD", time.Minute, time.Minute)

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	p.poll(context.Background())

	select {
	case q := <-ch:
		require.Equal(t, 2411.5, q.PriceLast)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	src := &stubQuotes{quote: &models.LiveQuote{PriceLast: 1}}
	p := NewLivePoller(src, cache.NewTTLCache(), nil, nil, "XAUUSD", time.Minute, time.Minute)

	ch := p.Subscribe()
	p.Unsubscribe(ch)

	_, open := <-ch
	require.False(t, open)

	// Broadcast after unsubscribe must not panic on the closed channel.
	p.poll(context.Background())
}
