package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/trex/internal/domain"
	"github.com/vadiminshakov/trex/internal/storage/filljournal"
)

func TestBalances(t *testing.T) {
	var buf bytes.Buffer
	err := Balances(&buf, []domain.CurrencyBalance{
		{Currency: "LTC", Balance: decimal.RequireFromString("1.5"), Available: decimal.RequireFromString("1.5"), Pending: decimal.Zero},
		{Currency: "ETH", Balance: decimal.NewFromInt(-2), Available: decimal.NewFromInt(-2), Pending: decimal.Zero},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "CURRENCY")
	assert.Contains(t, out, "LTC")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "-2")
	assert.Less(t, strings.Index(out, "LTC"), strings.Index(out, "ETH"))
}

func TestOrderBookDepth(t *testing.T) {
	book := &domain.OrderBook{
		MarketName: "BTC-LTC",
		Buy: []domain.OrderBookEntry{
			{Rate: decimal.RequireFromString("0.011"), Quantity: decimal.NewFromInt(1)},
			{Rate: decimal.RequireFromString("0.010"), Quantity: decimal.NewFromInt(2)},
		},
		Sell: []domain.OrderBookEntry{
			{Rate: decimal.RequireFromString("0.012"), Quantity: decimal.NewFromInt(3)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, OrderBook(&buf, book, 1))

	out := buf.String()
	assert.Contains(t, out, "0.011")
	assert.NotContains(t, out, "0.01 ")
	assert.Contains(t, out, "0.012")

	buf.Reset()
	require.NoError(t, OrderBook(&buf, nil, 0))
	assert.Empty(t, buf.String())
}

func TestOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Order(&buf, nil))
	assert.Contains(t, buf.String(), "order not found")

	buf.Reset()
	require.NoError(t, Order(&buf, &domain.Order{
		OrderUUID: "abc",
		Exchange:  "BTC-LTC",
		Type:      domain.OrderTypeLimitBuy,
		Opened:    domain.NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)),
		IsOpen:    true,
	}))
	out := buf.String()
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "LIMIT_BUY")
	assert.Contains(t, out, "2024-01-02 03:04:05")
}

func TestFills(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fills(&buf, []filljournal.Record{
		{Index: 7, Order: domain.Order{OrderUUID: "sim-1", Exchange: "BTC-LTC", Type: domain.OrderTypeLimitSell, Quantity: decimal.NewFromInt(-3)}},
	}))

	out := buf.String()
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "sim-1")
	assert.Contains(t, out, "LIMIT_SELL")
	assert.Contains(t, out, "-3")
}
