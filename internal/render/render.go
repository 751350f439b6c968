// Package render prints exchange data as terminal tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
	"github.com/vadiminshakov/trex/internal/storage/filljournal"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}

	headerStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	buyStyle    = cellStyle.Foreground(special)
	sellStyle   = cellStyle.Foreground(danger)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(special)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(highlight)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func write(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func num(d decimal.Decimal) string {
	return d.String()
}

func ts(t domain.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateTime)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Title prints a styled heading.
func Title(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, titleStyle.Render(s))
	return err
}

// Done prints a success line, e.g. an accepted order id.
func Done(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintln(w, okStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

func Markets(w io.Writer, markets []domain.Market) error {
	t := newTable("MARKET", "BASE", "TARGET", "MIN TRADE", "ACTIVE")
	for _, m := range markets {
		t.Row(m.MarketName, m.BaseCurrency, m.MarketCurrency, num(m.MinTradeSize), yesNo(m.IsActive))
	}
	return write(w, t)
}

func Currencies(w io.Writer, currencies []domain.Currency) error {
	t := newTable("CURRENCY", "NAME", "TX FEE", "CONFIRMATIONS", "ACTIVE")
	for _, c := range currencies {
		t.Row(c.Currency, c.CurrencyLong, num(c.TxFee), strconv.Itoa(c.MinConfirmation), yesNo(c.IsActive))
	}
	return write(w, t)
}

func Tickers(w io.Writer, tickers []domain.Ticker) error {
	t := newTable("MARKET", "BID", "ASK", "LAST")
	for _, tk := range tickers {
		t.Row(tk.MarketName, num(tk.Bid), num(tk.Ask), num(tk.Last))
	}
	return write(w, t)
}

func Summaries(w io.Writer, summaries []domain.MarketSummary) error {
	t := newTable("MARKET", "LAST", "HIGH", "LOW", "VOLUME", "BASE VOLUME", "UPDATED")
	for _, s := range summaries {
		t.Row(s.MarketName, num(s.Last), num(s.High), num(s.Low), num(s.Volume), num(s.BaseVolume), ts(s.TimeStamp))
	}
	return write(w, t)
}

// OrderBook prints at most depth levels per side. Zero means all.
func OrderBook(w io.Writer, book *domain.OrderBook, depth int) error {
	if book == nil {
		return nil
	}

	buy, sell := book.Buy, book.Sell
	if depth > 0 {
		buy = buy[:min(depth, len(buy))]
		sell = sell[:min(depth, len(sell))]
	}

	t := newTable("SIDE", "RATE", "QUANTITY")
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row < len(buy):
			return buyStyle
		default:
			return sellStyle
		}
	})
	for _, e := range buy {
		t.Row("buy", num(e.Rate), num(e.Quantity))
	}
	for _, e := range sell {
		t.Row("sell", num(e.Rate), num(e.Quantity))
	}
	return write(w, t)
}

func Trades(w io.Writer, trades []domain.Trade) error {
	t := newTable("ID", "TIME", "SIDE", "PRICE", "QUANTITY", "TOTAL")
	for _, tr := range trades {
		t.Row(strconv.FormatInt(tr.ID, 10), ts(tr.TimeStamp), tr.OrderType, num(tr.Price), num(tr.Quantity), num(tr.Total))
	}
	return write(w, t)
}

func Balances(w io.Writer, balances []domain.CurrencyBalance) error {
	t := newTable("CURRENCY", "BALANCE", "AVAILABLE", "PENDING")
	for _, b := range balances {
		t.Row(b.Currency, num(b.Balance), num(b.Available), num(b.Pending))
	}
	return write(w, t)
}

func OpenOrders(w io.Writer, orders []domain.OpenOrder) error {
	t := newTable("ID", "MARKET", "TYPE", "QUANTITY", "REMAINING", "LIMIT", "OPENED")
	for _, o := range orders {
		t.Row(o.OrderUUID, o.Exchange, string(o.OrderType), num(o.Quantity), num(o.QuantityRemaining), num(o.Limit), ts(o.Opened))
	}
	return write(w, t)
}

func OrderHistory(w io.Writer, orders []domain.HistoricOrder) error {
	t := newTable("ID", "MARKET", "TYPE", "QUANTITY", "LIMIT", "PRICE", "CLOSED")
	for _, o := range orders {
		t.Row(o.OrderUUID, o.Exchange, string(o.OrderType), num(o.Quantity), num(o.Limit), num(o.Price), ts(o.TimeStamp))
	}
	return write(w, t)
}

// Order prints one order as a key/value table.
func Order(w io.Writer, o *domain.Order) error {
	if o == nil {
		_, err := fmt.Fprintln(w, "order not found")
		return err
	}

	t := newTable("FIELD", "VALUE")
	t.Row("id", o.OrderUUID)
	t.Row("market", o.Exchange)
	t.Row("type", string(o.Type))
	t.Row("quantity", num(o.Quantity))
	t.Row("remaining", num(o.QuantityRemaining))
	t.Row("limit", num(o.Limit))
	t.Row("price", num(o.Price))
	t.Row("open", yesNo(o.IsOpen))
	t.Row("opened", ts(o.Opened))
	t.Row("closed", ts(o.Closed))
	return write(w, t)
}

func DepositAddress(w io.Writer, a *domain.DepositAddress) error {
	t := newTable("CURRENCY", "ADDRESS")
	t.Row(a.Currency, a.Address)
	return write(w, t)
}

func Withdrawals(w io.Writer, items []domain.HistoricWithdrawal) error {
	t := newTable("ID", "CURRENCY", "AMOUNT", "ADDRESS", "OPENED", "PENDING")
	for _, i := range items {
		t.Row(i.PaymentUUID, i.Currency, num(i.Amount), i.Address, ts(i.Opened), yesNo(i.PendingPayment))
	}
	return write(w, t)
}

func Deposits(w io.Writer, items []domain.HistoricDeposit) error {
	t := newTable("ID", "CURRENCY", "AMOUNT", "CONFIRMATIONS", "UPDATED")
	for _, i := range items {
		t.Row(strconv.FormatInt(i.ID, 10), i.Currency, num(i.Amount), strconv.Itoa(i.Confirmations), ts(i.LastUpdated))
	}
	return write(w, t)
}

// Fills prints journaled simulated fills with their WAL index.
func Fills(w io.Writer, records []filljournal.Record) error {
	t := newTable("#", "ID", "MARKET", "TYPE", "QUANTITY", "RATE", "CLOSED")
	for _, r := range records {
		o := r.Order
		t.Row(strconv.FormatUint(r.Index, 10), o.OrderUUID, o.Exchange, string(o.Type), num(o.Quantity), num(o.PricePerUnit), ts(o.Closed))
	}
	return write(w, t)
}
