package bittrex

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
)

// BuyLimit places a limit buy of quantity target currency at rate.
func (c *Client) BuyLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	return c.placeLimit(ctx, "market/buylimit", market, quantity, rate)
}

// SellLimit places a limit sell of quantity target currency at rate.
func (c *Client) SellLimit(ctx context.Context, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	return c.placeLimit(ctx, "market/selllimit", market, quantity, rate)
}

func (c *Client) placeLimit(ctx context.Context, path, market string, quantity, rate decimal.Decimal) (*domain.AcceptedOrder, error) {
	params := Params{}.
		Add("market", market).
		Add("quantity", quantity.String()).
		Add("rate", rate.String())

	var accepted domain.AcceptedOrder
	if err := c.getObject(ctx, path, params, true, &accepted); err != nil {
		return nil, err
	}

	return &accepted, nil
}

// CancelOrder cancels an open order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return c.get(ctx, "market/cancel", Params{}.Add("uuid", orderID), true, nil)
}

// GetOpenOrders lists open orders, restricted to market unless it is empty.
func (c *Client) GetOpenOrders(ctx context.Context, market string) ([]domain.OpenOrder, error) {
	var params Params
	if market != "" {
		params = params.Add("market", market)
	}

	var orders []domain.OpenOrder
	if err := c.get(ctx, "market/getopenorders", params, true, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
