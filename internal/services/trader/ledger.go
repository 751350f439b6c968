package trader

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
)

// ledger simulated balances and orders. Only SimulateTrader mutates it.
type ledger struct {
	mu sync.RWMutex
	// balances per currency, created on first touch and never removed
	balances map[string]decimal.Decimal
	// currencies in first-touch order
	currencies []string
	open       []domain.Order
	closed     []domain.Order
}

func newLedger() *ledger {
	return &ledger{balances: make(map[string]decimal.Decimal)}
}

// fill records a closed order and moves delta into currency atomically.
func (l *ledger) fill(order domain.Order, currency string, delta decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = append(l.closed, order)
	if _, ok := l.balances[currency]; !ok {
		l.currencies = append(l.currencies, currency)
		l.balances[currency] = decimal.Zero
	}
	l.balances[currency] = l.balances[currency].Add(delta)
}

func (l *ledger) addOpen(order domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.open = append(l.open, order)
}

// removeOpen deletes the open order with id. Cancelled orders leave no history.
func (l *ledger) removeOpen(id string) (domain.Order, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, o := range l.open {
		if o.OrderUUID == id {
			l.open = append(l.open[:i], l.open[i+1:]...)
			return o, true
		}
	}

	return domain.Order{}, false
}

// find looks at open orders first, then closed ones.
func (l *ledger) find(id string) (domain.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.open {
		if o.OrderUUID == id {
			return o, true
		}
	}
	for _, o := range l.closed {
		if o.OrderUUID == id {
			return o, true
		}
	}

	return domain.Order{}, false
}

func (l *ledger) openOrders(market string) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return filterByMarket(l.open, market)
}

func (l *ledger) closedOrders(market string) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return filterByMarket(l.closed, market)
}

func (l *ledger) balanceList() []domain.CurrencyBalance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.CurrencyBalance, 0, len(l.currencies))
	for _, currency := range l.currencies {
		out = append(out, newBalance(currency, l.balances[currency]))
	}

	return out
}

func (l *ledger) balance(currency string) domain.CurrencyBalance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	amount, ok := l.balances[currency]
	if !ok {
		amount = decimal.Zero
	}

	return newBalance(currency, amount)
}

// filterByMarket copies orders whose market equals market, or all of them if market is empty.
func filterByMarket(orders []domain.Order, market string) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if market == "" || o.Exchange == market {
			out = append(out, o)
		}
	}

	return out
}

func newBalance(currency string, amount decimal.Decimal) domain.CurrencyBalance {
	return domain.CurrencyBalance{
		Currency:  currency,
		Balance:   amount,
		Available: amount,
		Pending:   decimal.Zero,
	}
}
