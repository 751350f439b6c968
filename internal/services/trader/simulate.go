package trader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/internal/domain"
	"github.com/vadiminshakov/trex/internal/services/pricer"
)

var (
	// ErrOrderNotFound is returned when cancelling an order that is not open.
	ErrOrderNotFound = errors.New("simulated order not found")
	// ErrInvalidOrder is returned for non-positive quantity or rate.
	ErrInvalidOrder = errors.New("invalid simulated order")
	// ErrNotSimulated is returned for operations that would move real funds.
	ErrNotSimulated = errors.New("operation is not available in simulation mode")
)

var _ Exchange = (*SimulateTrader)(nil)

// FillJournal receives every simulated fill.
type FillJournal interface {
	Record(order domain.Order) error
}

// SimulateTrader behaves like the live exchange except that limit orders,
// cancellations, balances and order queries are served from an in-memory
// ledger. Orders fill only at submission time, against the last trade price.
// Everything else is delegated to the embedded live exchange.
type SimulateTrader struct {
	Exchange

	pricer  pricer.Pricer
	ledger  *ledger
	journal FillJournal
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// SimulateOption configures SimulateTrader.
type SimulateOption func(*SimulateTrader)

// WithPricer overrides the price source. By default the live ticker is used.
func WithPricer(p pricer.Pricer) SimulateOption {
	return func(t *SimulateTrader) {
		t.pricer = p
	}
}

// WithFillJournal appends every fill to j.
func WithFillJournal(j FillJournal) SimulateOption {
	return func(t *SimulateTrader) {
		t.journal = j
	}
}

// WithClock overrides the clock used for order timestamps.
func WithClock(now func() time.Time) SimulateOption {
	return func(t *SimulateTrader) {
		t.now = now
	}
}

// WithIDGenerator overrides how order ids are minted. Ids must be unique.
func WithIDGenerator(newID func() string) SimulateOption {
	return func(t *SimulateTrader) {
		t.newID = newID
	}
}

// NewSimulateTrader creates a simulator on top of the live exchange.
func NewSimulateTrader(live Exchange, logger *zap.Logger, opts ...SimulateOption) (*SimulateTrader, error) {
	if live == nil {
		return nil, errors.New("live exchange is required for SimulateTrader")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &SimulateTrader{
		Exchange: live,
		ledger:   newLedger(),
		logger:   logger,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.pricer == nil {
		t.pricer = pricer.NewLastTradePricer(live)
	}

	logger.Info("simulate init", zap.Bool("journal", t.journal != nil))

	return t, nil
}

// BuyLimit fills immediately when the last price is at or below rate,
// crediting quantity to the target currency. Otherwise the order stays open.
func (t *SimulateTrader) BuyLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	return t.place(ctx, domain.OrderTypeLimitBuy, market, quantity, rate)
}

// SellLimit fills immediately when the last price is at or above rate,
// debiting quantity from the target currency. Otherwise the order stays open.
func (t *SimulateTrader) SellLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	return t.place(ctx, domain.OrderTypeLimitSell, market, quantity, rate)
}

func (t *SimulateTrader) place(ctx context.Context, side domain.OrderType, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	pair, err := domain.ParsePair(market)
	if err != nil {
		return nil, err
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, errors.Wrapf(ErrInvalidOrder, "quantity must be positive, got %s", quantity.String())
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, errors.Wrapf(ErrInvalidOrder, "rate must be positive, got %s", rate.String())
	}

	price, err := t.pricer.GetPrice(ctx, market)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get price for simulated %s", side)
	}

	signed := quantity
	fills := price.LessThanOrEqual(rate)
	if side == domain.OrderTypeLimitSell {
		signed = quantity.Neg()
		fills = price.GreaterThanOrEqual(rate)
	}

	now := domain.NewTimestamp(t.now())
	order := domain.Order{
		OrderUUID:         t.newID(),
		Exchange:          market,
		Type:              side,
		Quantity:          signed,
		QuantityRemaining: quantity,
		Limit:             rate,
		Reserved:          decimal.Zero,
		CommissionPaid:    decimal.Zero,
		Price:             signed.Mul(rate),
		PricePerUnit:      rate,
		Opened:            now,
		IsOpen:            true,
	}

	if !fills {
		t.ledger.addOpen(order)
		t.logger.Info("simulated order opened",
			zap.String("id", order.OrderUUID),
			zap.String("market", market),
			zap.String("side", string(side)),
			zap.String("quantity", quantity.String()),
			zap.String("rate", rate.String()),
			zap.String("last", price.String()))
		return &domain.AcceptedOrder{UUID: order.OrderUUID}, nil
	}

	order.IsOpen = false
	order.Closed = now
	order.QuantityRemaining = decimal.Zero
	t.ledger.fill(order, pair.Target, signed)

	t.logger.Info("simulated order filled",
		zap.String("id", order.OrderUUID),
		zap.String("market", market),
		zap.String("side", string(side)),
		zap.String("quantity", quantity.String()),
		zap.String("rate", rate.String()),
		zap.String("last", price.String()),
		zap.String("currency", pair.Target))

	if t.journal != nil {
		if err := t.journal.Record(order); err != nil {
			t.logger.Warn("failed to journal simulated fill", zap.String("id", order.OrderUUID), zap.Error(err))
		}
	}

	return &domain.AcceptedOrder{UUID: order.OrderUUID}, nil
}

// CancelOrder removes an open simulated order. Closed orders cannot be cancelled.
func (t *SimulateTrader) CancelOrder(ctx context.Context, orderID string) error {
	order, ok := t.ledger.removeOpen(orderID)
	if !ok {
		return errors.Wrap(ErrOrderNotFound, orderID)
	}

	t.logger.Info("simulated order cancelled",
		zap.String("id", orderID),
		zap.String("market", order.Exchange))

	return nil
}

// GetOpenOrders returns open simulated orders, filtered by market unless it is empty.
func (t *SimulateTrader) GetOpenOrders(ctx context.Context, market string) ([]domain.OpenOrder, error) {
	orders := t.ledger.openOrders(market)

	out := make([]domain.OpenOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, domain.OpenOrder{
			UUID:              o.OrderUUID,
			OrderUUID:         o.OrderUUID,
			Exchange:          o.Exchange,
			OrderType:         o.Type,
			Quantity:          o.Quantity,
			QuantityRemaining: o.QuantityRemaining,
			Limit:             o.Limit,
			CommissionPaid:    o.CommissionPaid,
			Price:             o.Price,
			PricePerUnit:      o.PricePerUnit,
			Opened:            o.Opened,
			Closed:            o.Closed,
		})
	}

	return out, nil
}

// GetBalances returns every simulated balance in the order currencies were first touched.
func (t *SimulateTrader) GetBalances(ctx context.Context) ([]domain.CurrencyBalance, error) {
	return t.ledger.balanceList(), nil
}

// GetBalance returns the simulated balance of currency, zero if it was never traded.
func (t *SimulateTrader) GetBalance(ctx context.Context, currency string) (*domain.CurrencyBalance, error) {
	balance := t.ledger.balance(currency)
	return &balance, nil
}

// GetOrder returns a simulated order, open ones first. It returns nil if the id is unknown.
func (t *SimulateTrader) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, ok := t.ledger.find(orderID)
	if !ok {
		return nil, nil
	}

	return &order, nil
}

// GetOrderHistory returns filled simulated orders for market, or all of them if market is empty.
func (t *SimulateTrader) GetOrderHistory(ctx context.Context, market string) ([]domain.HistoricOrder, error) {
	orders := t.ledger.closedOrders(market)

	out := make([]domain.HistoricOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, domain.HistoricOrder{
			OrderUUID:         o.OrderUUID,
			Exchange:          o.Exchange,
			TimeStamp:         o.Closed,
			OrderType:         o.Type,
			Limit:             o.Limit,
			Quantity:          o.Quantity,
			QuantityRemaining: o.QuantityRemaining,
			Commission:        o.CommissionPaid,
			Price:             o.Price,
			PricePerUnit:      o.PricePerUnit,
		})
	}

	return out, nil
}

// Withdraw is refused so that a rehearsal never moves real funds.
func (t *SimulateTrader) Withdraw(ctx context.Context, currency string, quantity decimal.Decimal, address, paymentID string) (*domain.AcceptedWithdrawal, error) {
	return nil, errors.Wrapf(ErrNotSimulated, "withdraw %s %s", quantity.String(), currency)
}
