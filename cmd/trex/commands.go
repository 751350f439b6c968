package main

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/trex/internal/domain"
	"github.com/vadiminshakov/trex/internal/render"
	"github.com/vadiminshakov/trex/internal/services/trader"
	"github.com/vadiminshakov/trex/internal/storage/filljournal"
)

const usage = `usage: trex [flags] <command> [args]

public:
  markets                          list markets
  currencies                       list currencies
  ticker MARKET...                 bid, ask and last price
  summary [MARKET...]              24h summaries, all markets if none given
  orderbook MARKET [TYPE] [DEPTH]  TYPE is buy, sell or both
  history MARKET                   recent trades

trading:
  buy MARKET QUANTITY RATE         place a limit buy
  sell MARKET QUANTITY RATE        place a limit sell
  cancel ORDER_ID                  cancel an open order
  orders [MARKET]                  open orders
  order ORDER_ID                   order details
  orderhistory [MARKET]            closed orders

account:
  balances                         all balances
  balance CURRENCY                 one balance
  address CURRENCY                 deposit address
  withdraw CURRENCY QUANTITY ADDRESS [PAYMENT_ID]
  withdrawals [CURRENCY]           withdrawal history
  deposits [CURRENCY]              deposit history

other:
  journal [MARKET]                 simulated fills
  setup [CONFIG] [ENV]             interactive configuration wizard

flags:
  -config, -env, -mode, -baseurl, -timeout, -retries, -journal, -log, -markets
`

var (
	errUsage          = errors.New("invalid usage, run trex without arguments for help")
	errUnknownCommand = errors.New("unknown command")
)

type cmdEnv struct {
	exchange   trader.Exchange
	journal    *filljournal.WALStore
	journalDir string
	markets    []string
	out        io.Writer
}

type command struct {
	minArgs int
	maxArgs int // -1 means unbounded
	run     func(ctx context.Context, env *cmdEnv, args []string) error
}

var commands = map[string]command{
	"markets":      {0, 0, cmdMarkets},
	"currencies":   {0, 0, cmdCurrencies},
	"ticker":       {1, -1, cmdTicker},
	"summary":      {0, -1, cmdSummary},
	"orderbook":    {1, 3, cmdOrderBook},
	"history":      {1, 1, cmdHistory},
	"buy":          {3, 3, cmdBuy},
	"sell":         {3, 3, cmdSell},
	"cancel":       {1, 1, cmdCancel},
	"orders":       {0, 1, cmdOrders},
	"order":        {1, 1, cmdOrder},
	"orderhistory": {0, 1, cmdOrderHistory},
	"balances":     {0, 0, cmdBalances},
	"balance":      {1, 1, cmdBalance},
	"address":      {1, 1, cmdAddress},
	"withdraw":     {3, 4, cmdWithdraw},
	"withdrawals":  {0, 1, cmdWithdrawals},
	"deposits":     {0, 1, cmdDeposits},
	"journal":      {0, 1, cmdJournal},
}

func dispatch(ctx context.Context, env *cmdEnv, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return errors.Wrap(errUnknownCommand, name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return errors.Wrapf(errUsage, "%s takes %s arguments", name, argRange(cmd))
	}

	return cmd.run(ctx, env, args)
}

func argRange(cmd command) string {
	switch {
	case cmd.maxArgs < 0:
		return "at least " + strconv.Itoa(cmd.minArgs)
	case cmd.minArgs == cmd.maxArgs:
		return strconv.Itoa(cmd.minArgs)
	default:
		return strconv.Itoa(cmd.minArgs) + " to " + strconv.Itoa(cmd.maxArgs)
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(errUsage, "%s %q is not a number", name, s)
	}
	return d, nil
}

func cmdMarkets(ctx context.Context, env *cmdEnv, _ []string) error {
	markets, err := env.exchange.GetMarkets(ctx)
	if err != nil {
		return err
	}
	return render.Markets(env.out, markets)
}

func cmdCurrencies(ctx context.Context, env *cmdEnv, _ []string) error {
	currencies, err := env.exchange.GetCurrencies(ctx)
	if err != nil {
		return err
	}
	return render.Currencies(env.out, currencies)
}

// cmdTicker fetches all tickers concurrently and prints them in argument order.
func cmdTicker(ctx context.Context, env *cmdEnv, args []string) error {
	tickers := make([]domain.Ticker, len(args))

	g, gctx := errgroup.WithContext(ctx)
	for i, market := range args {
		g.Go(func() error {
			t, err := env.exchange.GetTicker(gctx, market)
			if err != nil {
				return err
			}
			tickers[i] = *t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return render.Tickers(env.out, tickers)
}

func cmdSummary(ctx context.Context, env *cmdEnv, args []string) error {
	markets := args
	if len(markets) == 0 {
		markets = env.markets
	}
	if len(markets) == 0 {
		summaries, err := env.exchange.GetMarketSummaries(ctx)
		if err != nil {
			return err
		}
		return render.Summaries(env.out, summaries)
	}

	summaries := make([]domain.MarketSummary, len(markets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, market := range markets {
		g.Go(func() error {
			s, err := env.exchange.GetMarketSummary(gctx, market)
			if err != nil {
				return err
			}
			summaries[i] = *s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return render.Summaries(env.out, summaries)
}

func cmdOrderBook(ctx context.Context, env *cmdEnv, args []string) error {
	bookType := domain.OrderBookBoth
	if t := optional(args, 1); t != "" {
		bookType = domain.OrderBookType(t)
	}
	depth := 20
	if d := optional(args, 2); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n <= 0 {
			return errors.Wrapf(errUsage, "depth %q must be a positive number", d)
		}
		depth = n
	}

	book, err := env.exchange.GetOrderBook(ctx, args[0], bookType, depth)
	if err != nil {
		return err
	}
	return render.OrderBook(env.out, book, depth)
}

func cmdHistory(ctx context.Context, env *cmdEnv, args []string) error {
	trades, err := env.exchange.GetMarketHistory(ctx, args[0])
	if err != nil {
		return err
	}
	return render.Trades(env.out, trades)
}

func cmdBuy(ctx context.Context, env *cmdEnv, args []string) error {
	return placeLimit(ctx, env, args, env.exchange.BuyLimit)
}

func cmdSell(ctx context.Context, env *cmdEnv, args []string) error {
	return placeLimit(ctx, env, args, env.exchange.SellLimit)
}

type limitFunc func(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error)

func placeLimit(ctx context.Context, env *cmdEnv, args []string, place limitFunc) error {
	quantity, err := parseAmount("quantity", args[1])
	if err != nil {
		return err
	}
	rate, err := parseAmount("rate", args[2])
	if err != nil {
		return err
	}

	accepted, err := place(ctx, args[0], quantity, rate)
	if err != nil {
		return err
	}
	return render.Done(env.out, "order accepted: %s", accepted.UUID)
}

func cmdCancel(ctx context.Context, env *cmdEnv, args []string) error {
	if err := env.exchange.CancelOrder(ctx, args[0]); err != nil {
		return err
	}
	return render.Done(env.out, "order cancelled: %s", args[0])
}

func cmdOrders(ctx context.Context, env *cmdEnv, args []string) error {
	orders, err := env.exchange.GetOpenOrders(ctx, optional(args, 0))
	if err != nil {
		return err
	}
	return render.OpenOrders(env.out, orders)
}

func cmdOrder(ctx context.Context, env *cmdEnv, args []string) error {
	order, err := env.exchange.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}
	return render.Order(env.out, order)
}

func cmdOrderHistory(ctx context.Context, env *cmdEnv, args []string) error {
	orders, err := env.exchange.GetOrderHistory(ctx, optional(args, 0))
	if err != nil {
		return err
	}
	return render.OrderHistory(env.out, orders)
}

func cmdBalances(ctx context.Context, env *cmdEnv, _ []string) error {
	balances, err := env.exchange.GetBalances(ctx)
	if err != nil {
		return err
	}
	return render.Balances(env.out, balances)
}

func cmdBalance(ctx context.Context, env *cmdEnv, args []string) error {
	balance, err := env.exchange.GetBalance(ctx, args[0])
	if err != nil {
		return err
	}
	return render.Balances(env.out, []domain.CurrencyBalance{*balance})
}

func cmdAddress(ctx context.Context, env *cmdEnv, args []string) error {
	address, err := env.exchange.GetDepositAddress(ctx, args[0])
	if err != nil {
		return err
	}
	return render.DepositAddress(env.out, address)
}

func cmdWithdraw(ctx context.Context, env *cmdEnv, args []string) error {
	quantity, err := parseAmount("quantity", args[1])
	if err != nil {
		return err
	}

	accepted, err := env.exchange.Withdraw(ctx, args[0], quantity, args[2], optional(args, 3))
	if err != nil {
		return err
	}
	return render.Done(env.out, "withdrawal accepted: %s", accepted.UUID)
}

func cmdWithdrawals(ctx context.Context, env *cmdEnv, args []string) error {
	items, err := env.exchange.GetWithdrawalHistory(ctx, optional(args, 0))
	if err != nil {
		return err
	}
	return render.Withdrawals(env.out, items)
}

func cmdDeposits(ctx context.Context, env *cmdEnv, args []string) error {
	items, err := env.exchange.GetDepositHistory(ctx, optional(args, 0))
	if err != nil {
		return err
	}
	return render.Deposits(env.out, items)
}

// cmdJournal reads fills from the journal of this run or, in live mode, from disk.
func cmdJournal(_ context.Context, env *cmdEnv, args []string) error {
	journal := env.journal
	if journal == nil {
		j, err := filljournal.NewWALStore(env.journalDir)
		if err != nil {
			return errors.Wrap(err, "open fill journal")
		}
		defer func() { _ = j.Close() }()
		journal = j
	}

	records, err := journal.Fills(optional(args, 0))
	if err != nil {
		return err
	}
	return render.Fills(env.out, records)
}
