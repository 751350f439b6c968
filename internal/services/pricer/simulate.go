package pricer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// LastTradePricer quotes the last trade price from the exchange public ticker.
// It needs no credentials.
type LastTradePricer struct {
	source tickerSource
}

// NewLastTradePricer creates a pricer backed by source, usually the live client.
func NewLastTradePricer(source tickerSource) *LastTradePricer {
	return &LastTradePricer{source: source}
}

// GetPrice returns the last trade price of market.
func (p *LastTradePricer) GetPrice(ctx context.Context, market string) (decimal.Decimal, error) {
	ticker, err := p.source.GetTicker(ctx, market)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "get ticker for %s", market)
	}
	if ticker == nil {
		return decimal.Decimal{}, errors.Errorf("exchange returned no ticker for %s", market)
	}

	return ticker.Last, nil
}
