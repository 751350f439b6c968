// Package trader selects between live and simulated order execution.
package trader

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
)

// Exchange is the full operation set of the exchange. The live client and
// SimulateTrader both implement it, so callers pick one at construction time.
type Exchange interface {
	GetMarkets(ctx context.Context) ([]domain.Market, error)
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
	GetTicker(ctx context.Context, market string) (*domain.Ticker, error)
	GetMarketSummaries(ctx context.Context) ([]domain.MarketSummary, error)
	GetMarketSummary(ctx context.Context, market string) (*domain.MarketSummary, error)
	GetOrderBook(ctx context.Context, market string, bookType domain.OrderBookType, depth int) (*domain.OrderBook, error)
	GetMarketHistory(ctx context.Context, market string) ([]domain.Trade, error)

	BuyLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error)
	SellLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error)
	CancelOrder(ctx context.Context, orderID string) error
	GetOpenOrders(ctx context.Context, market string) ([]domain.OpenOrder, error)

	GetBalances(ctx context.Context) ([]domain.CurrencyBalance, error)
	GetBalance(ctx context.Context, currency string) (*domain.CurrencyBalance, error)
	GetDepositAddress(ctx context.Context, currency string) (*domain.DepositAddress, error)
	Withdraw(ctx context.Context, currency string, quantity decimal.Decimal, address, paymentID string) (*domain.AcceptedWithdrawal, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrderHistory(ctx context.Context, market string) ([]domain.HistoricOrder, error)
	GetWithdrawalHistory(ctx context.Context, currency string) ([]domain.HistoricWithdrawal, error)
	GetDepositHistory(ctx context.Context, currency string) ([]domain.HistoricDeposit, error)
}
