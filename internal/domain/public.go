package domain

import "github.com/shopspring/decimal"

// Market metadata of a tradable market.
type Market struct {
	MarketCurrency     string          `json:"MarketCurrency"`
	BaseCurrency       string          `json:"BaseCurrency"`
	MarketCurrencyLong string          `json:"MarketCurrencyLong"`
	BaseCurrencyLong   string          `json:"BaseCurrencyLong"`
	MinTradeSize       decimal.Decimal `json:"MinTradeSize"`
	MarketName         string          `json:"MarketName"`
	IsActive           bool            `json:"IsActive"`
	Created            Timestamp       `json:"Created"`
}

// Currency supported currency and its transfer parameters.
type Currency struct {
	Currency        string          `json:"Currency"`
	CurrencyLong    string          `json:"CurrencyLong"`
	MinConfirmation int             `json:"MinConfirmation"`
	TxFee           decimal.Decimal `json:"TxFee"`
	IsActive        bool            `json:"IsActive"`
	CoinType        string          `json:"CoinType"`
	BaseAddress     string          `json:"BaseAddress"`
}

// Ticker current bid, ask and last trade price of a market.
type Ticker struct {
	// MarketName is filled in by the client, the API does not echo it.
	MarketName string          `json:"MarketName,omitempty"`
	Bid        decimal.Decimal `json:"Bid"`
	Ask        decimal.Decimal `json:"Ask"`
	Last       decimal.Decimal `json:"Last"`
}

// MarketSummary 24h statistics of a market.
type MarketSummary struct {
	MarketName     string          `json:"MarketName"`
	High           decimal.Decimal `json:"High"`
	Low            decimal.Decimal `json:"Low"`
	Volume         decimal.Decimal `json:"Volume"`
	Last           decimal.Decimal `json:"Last"`
	BaseVolume     decimal.Decimal `json:"BaseVolume"`
	TimeStamp      Timestamp       `json:"TimeStamp"`
	Bid            decimal.Decimal `json:"Bid"`
	Ask            decimal.Decimal `json:"Ask"`
	OpenBuyOrders  int             `json:"OpenBuyOrders"`
	OpenSellOrders int             `json:"OpenSellOrders"`
	PrevDay        decimal.Decimal `json:"PrevDay"`
	Created        Timestamp       `json:"Created"`
}

// OrderBookType selects which side of the book to fetch.
type OrderBookType string

const (
	OrderBookBuy  OrderBookType = "buy"
	OrderBookSell OrderBookType = "sell"
	OrderBookBoth OrderBookType = "both"
)

// OrderBookEntry one price level.
type OrderBookEntry struct {
	Quantity decimal.Decimal `json:"Quantity"`
	Rate     decimal.Decimal `json:"Rate"`
}

// OrderBook bids and asks of a market. Only the requested side is populated.
type OrderBook struct {
	MarketName string           `json:"MarketName,omitempty"`
	Buy        []OrderBookEntry `json:"buy"`
	Sell       []OrderBookEntry `json:"sell"`
}

// Trade a recent fill on the public tape.
type Trade struct {
	ID        int64           `json:"Id"`
	TimeStamp Timestamp       `json:"TimeStamp"`
	Quantity  decimal.Decimal `json:"Quantity"`
	Price     decimal.Decimal `json:"Price"`
	Total     decimal.Decimal `json:"Total"`
	FillType  string          `json:"FillType"`
	OrderType string          `json:"OrderType"`
}
