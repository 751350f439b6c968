package trader

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/trex/internal/domain"
)

func TestLedger_FillCreatesBalanceOnce(t *testing.T) {
	l := newLedger()

	l.fill(domain.Order{OrderUUID: "a", Exchange: "BTC-LTC"}, "LTC", decimal.NewFromInt(2))
	l.fill(domain.Order{OrderUUID: "b", Exchange: "BTC-LTC"}, "LTC", decimal.NewFromInt(-5))

	balances := l.balanceList()
	require.Len(t, balances, 1)
	assert.Equal(t, "LTC", balances[0].Currency)
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(-3)))
	assert.Len(t, l.closedOrders(""), 2)
}

func TestLedger_RemoveOpen(t *testing.T) {
	l := newLedger()
	l.addOpen(domain.Order{OrderUUID: "a", Exchange: "BTC-LTC"})
	l.addOpen(domain.Order{OrderUUID: "b", Exchange: "BTC-ETH"})
	l.addOpen(domain.Order{OrderUUID: "c", Exchange: "BTC-LTC"})

	removed, ok := l.removeOpen("b")
	require.True(t, ok)
	assert.Equal(t, "BTC-ETH", removed.Exchange)

	_, ok = l.removeOpen("b")
	assert.False(t, ok)

	open := l.openOrders("")
	require.Len(t, open, 2)
	assert.Equal(t, "a", open[0].OrderUUID)
	assert.Equal(t, "c", open[1].OrderUUID)
}

func TestLedger_FindPrefersOpen(t *testing.T) {
	l := newLedger()
	l.fill(domain.Order{OrderUUID: "x", IsOpen: false}, "LTC", decimal.NewFromInt(1))
	l.addOpen(domain.Order{OrderUUID: "x", IsOpen: true})

	order, ok := l.find("x")
	require.True(t, ok)
	assert.True(t, order.IsOpen)

	_, ok = l.find("y")
	assert.False(t, ok)
}

func TestLedger_FilterReturnsCopies(t *testing.T) {
	l := newLedger()
	l.addOpen(domain.Order{OrderUUID: "a", Exchange: "BTC-LTC"})

	open := l.openOrders("BTC-LTC")
	open[0].Exchange = "changed"

	assert.Equal(t, "BTC-LTC", l.openOrders("")[0].Exchange)
	assert.Empty(t, l.openOrders("BTC-ETH"))
}
