package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/internal/domain"
	"github.com/vadiminshakov/trex/internal/services/trader"
	"github.com/vadiminshakov/trex/internal/storage/filljournal"
)

type stubExchange struct {
	trader.Exchange
	last map[string]decimal.Decimal
}

func (s *stubExchange) GetTicker(_ context.Context, market string) (*domain.Ticker, error) {
	last, ok := s.last[market]
	if !ok {
		return nil, errors.Errorf("unknown market %s", market)
	}
	return &domain.Ticker{MarketName: market, Last: last, Bid: last, Ask: last}, nil
}

func (s *stubExchange) GetMarketSummary(_ context.Context, market string) (*domain.MarketSummary, error) {
	last, ok := s.last[market]
	if !ok {
		return nil, errors.Errorf("unknown market %s", market)
	}
	return &domain.MarketSummary{MarketName: market, Last: last}, nil
}

func newTestEnv(t *testing.T) (*cmdEnv, *bytes.Buffer) {
	t.Helper()

	live := &stubExchange{last: map[string]decimal.Decimal{
		"BTC-LTC": decimal.NewFromInt(10),
		"BTC-ETH": decimal.RequireFromString("0.05"),
	}}

	journal, err := filljournal.NewWALStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })

	sim, err := trader.NewSimulateTrader(live, zap.NewNop(), trader.WithFillJournal(journal))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &cmdEnv{exchange: sim, journal: journal, out: out}, out
}

func TestDispatch_Usage(t *testing.T) {
	env, _ := newTestEnv(t)

	err := dispatch(t.Context(), env, "nope", nil)
	require.ErrorIs(t, err, errUnknownCommand)

	err = dispatch(t.Context(), env, "buy", []string{"BTC-LTC", "1"})
	require.ErrorIs(t, err, errUsage)

	err = dispatch(t.Context(), env, "balances", []string{"extra"})
	require.ErrorIs(t, err, errUsage)

	err = dispatch(t.Context(), env, "buy", []string{"BTC-LTC", "one", "10"})
	require.ErrorIs(t, err, errUsage)
}

func TestDispatch_SimulatedTrading(t *testing.T) {
	env, out := newTestEnv(t)
	ctx := t.Context()

	require.NoError(t, dispatch(ctx, env, "buy", []string{"BTC-LTC", "2", "12"}))
	assert.Contains(t, out.String(), "order accepted")

	out.Reset()
	require.NoError(t, dispatch(ctx, env, "balance", []string{"LTC"}))
	assert.Contains(t, out.String(), "LTC")
	assert.Contains(t, out.String(), "2")

	require.NoError(t, dispatch(ctx, env, "sell", []string{"BTC-LTC", "1", "20"}))
	out.Reset()
	require.NoError(t, dispatch(ctx, env, "orders", nil))
	assert.Contains(t, out.String(), "LIMIT_SELL")

	out.Reset()
	require.NoError(t, dispatch(ctx, env, "journal", []string{"BTC-LTC"}))
	assert.Contains(t, out.String(), "LIMIT_BUY")
	assert.NotContains(t, out.String(), "LIMIT_SELL")

	err := dispatch(ctx, env, "cancel", []string{"missing"})
	require.ErrorIs(t, err, trader.ErrOrderNotFound)

	err = dispatch(ctx, env, "withdraw", []string{"BTC", "1", "addr"})
	require.ErrorIs(t, err, trader.ErrNotSimulated)
}

func TestDispatch_TickerKeepsArgumentOrder(t *testing.T) {
	env, out := newTestEnv(t)

	require.NoError(t, dispatch(t.Context(), env, "ticker", []string{"BTC-ETH", "BTC-LTC"}))

	s := out.String()
	eth := bytes.Index([]byte(s), []byte("BTC-ETH"))
	ltc := bytes.Index([]byte(s), []byte("BTC-LTC"))
	require.NotEqual(t, -1, eth)
	require.NotEqual(t, -1, ltc)
	assert.Less(t, eth, ltc)

	err := dispatch(t.Context(), env, "ticker", []string{"BTC-LTC", "BTC-DOGE"})
	require.Error(t, err)
}

func TestDispatch_SummaryUsesConfiguredMarkets(t *testing.T) {
	env, out := newTestEnv(t)
	env.markets = []string{"BTC-LTC"}

	require.NoError(t, dispatch(t.Context(), env, "summary", nil))
	assert.Contains(t, out.String(), "BTC-LTC")
	assert.NotContains(t, out.String(), "BTC-ETH")
}

func TestDispatch_JournalFromDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := filljournal.NewWALStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Record(domain.Order{OrderUUID: "sim-9", Exchange: "BTC-LTC", Type: domain.OrderTypeLimitBuy}))
	require.NoError(t, store.Close())

	out := &bytes.Buffer{}
	env := &cmdEnv{journalDir: dir, out: out}
	require.NoError(t, dispatch(t.Context(), env, "journal", nil))
	assert.Contains(t, out.String(), "sim-9")
}
