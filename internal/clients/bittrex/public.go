package bittrex

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/trex/internal/domain"
)

// GetMarkets lists all markets.
func (c *Client) GetMarkets(ctx context.Context) ([]domain.Market, error) {
	var markets []domain.Market
	if err := c.get(ctx, "public/getmarkets", nil, false, &markets); err != nil {
		return nil, err
	}

	return markets, nil
}

// GetCurrencies lists all supported currencies.
func (c *Client) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var currencies []domain.Currency
	if err := c.get(ctx, "public/getcurrencies", nil, false, &currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

// GetTicker returns bid, ask and last price of market, e.g. BTC-LTC.
func (c *Client) GetTicker(ctx context.Context, market string) (*domain.Ticker, error) {
	var ticker domain.Ticker
	params := Params{}.Add("market", market)
	if err := c.getObject(ctx, "public/getticker", params, false, &ticker); err != nil {
		return nil, err
	}
	ticker.MarketName = market

	return &ticker, nil
}

// GetMarketSummaries returns the last 24h summary of every market.
func (c *Client) GetMarketSummaries(ctx context.Context) ([]domain.MarketSummary, error) {
	var summaries []domain.MarketSummary
	if err := c.get(ctx, "public/getmarketsummaries", nil, false, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetMarketSummary returns the last 24h summary of market.
func (c *Client) GetMarketSummary(ctx context.Context, market string) (*domain.MarketSummary, error) {
	const path = "public/getmarketsummary"

	raw, err := c.Request(ctx, http.MethodGet, path, Params{}.Add("market", market), false)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if isNull(raw) {
		return nil, errors.Wrap(ErrNoResult, path)
	}

	// the API wraps the single summary in an array
	var summaries []domain.MarketSummary
	if err := json.Unmarshal(raw, &summaries); err == nil {
		if len(summaries) == 0 {
			return nil, errors.Wrap(ErrNoResult, path)
		}
		return &summaries[0], nil
	}

	var summary domain.MarketSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, errors.Wrapf(ErrMalformedResponse, "decode %s result: %v", path, err)
	}

	return &summary, nil
}

// GetOrderBook returns up to depth levels of the requested side(s) of the book.
func (c *Client) GetOrderBook(ctx context.Context, market string, bookType domain.OrderBookType, depth int) (*domain.OrderBook, error) {
	const path = "public/getorderbook"

	params := Params{}.
		Add("market", market).
		Add("type", string(bookType)).
		Add("depth", strconv.Itoa(depth))

	book := &domain.OrderBook{MarketName: market}

	var err error
	switch bookType {
	case domain.OrderBookBoth:
		err = c.get(ctx, path, params, false, book)
		book.MarketName = market
	case domain.OrderBookBuy:
		err = c.get(ctx, path, params, false, &book.Buy)
	case domain.OrderBookSell:
		err = c.get(ctx, path, params, false, &book.Sell)
	default:
		return nil, errors.Errorf("unknown order book type %q", bookType)
	}
	if err != nil {
		return nil, err
	}

	return book, nil
}

// GetMarketHistory returns the latest trades of market.
func (c *Client) GetMarketHistory(ctx context.Context, market string) ([]domain.Trade, error) {
	var trades []domain.Trade
	if err := c.get(ctx, "public/getmarkethistory", Params{}.Add("market", market), false, &trades); err != nil {
		return nil, err
	}

	return trades, nil
}
