// Package pricer supplies market prices to the order simulator.
package pricer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
)

// Pricer returns the current price of a market.
type Pricer interface {
	GetPrice(ctx context.Context, market string) (decimal.Decimal, error)
}

type tickerSource interface {
	GetTicker(ctx context.Context, market string) (*domain.Ticker, error)
}
