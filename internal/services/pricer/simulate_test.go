package pricer

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/trex/internal/domain"
)

type stubTickers struct {
	tickers map[string]*domain.Ticker
	err     error
}

func (s *stubTickers) GetTicker(ctx context.Context, market string) (*domain.Ticker, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tickers[market], nil
}

func TestLastTradePricer_GetPrice(t *testing.T) {
	source := &stubTickers{tickers: map[string]*domain.Ticker{
		"BTC-LTC": {MarketName: "BTC-LTC", Bid: decimal.NewFromInt(9), Ask: decimal.NewFromInt(11), Last: decimal.NewFromInt(10)},
	}}
	p := NewLastTradePricer(source)

	t.Run("returns last price", func(t *testing.T) {
		price, err := p.GetPrice(context.Background(), "BTC-LTC")
		require.NoError(t, err)
		assert.True(t, price.Equal(decimal.NewFromInt(10)))
	})

	t.Run("missing ticker", func(t *testing.T) {
		_, err := p.GetPrice(context.Background(), "BTC-XYZ")
		assert.Error(t, err)
	})

	t.Run("source error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewLastTradePricer(&stubTickers{err: boom}).GetPrice(context.Background(), "BTC-LTC")
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "BTC-LTC")
	})
}
