package bittrex

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trex/internal/domain"
)

// GetBalances returns the balance of every currency of the account.
func (c *Client) GetBalances(ctx context.Context) ([]domain.CurrencyBalance, error) {
	var balances []domain.CurrencyBalance
	if err := c.get(ctx, "account/getbalances", nil, true, &balances); err != nil {
		return nil, err
	}

	return balances, nil
}

// GetBalance returns the balance of currency, e.g. BTC.
func (c *Client) GetBalance(ctx context.Context, currency string) (*domain.CurrencyBalance, error) {
	var balance domain.CurrencyBalance
	if err := c.getObject(ctx, "account/getbalance", Params{}.Add("currency", currency), true, &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

// GetDepositAddress returns the deposit address of currency.
func (c *Client) GetDepositAddress(ctx context.Context, currency string) (*domain.DepositAddress, error) {
	var address domain.DepositAddress
	if err := c.getObject(ctx, "account/getdepositaddress", Params{}.Add("currency", currency), true, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

// Withdraw sends quantity of currency to address. paymentID is optional.
func (c *Client) Withdraw(ctx context.Context, currency string, quantity decimal.Decimal, address, paymentID string) (*domain.AcceptedWithdrawal, error) {
	params := Params{}.
		Add("currency", currency).
		Add("quantity", quantity.String()).
		Add("address", address)
	if paymentID != "" {
		params = params.Add("paymentid", paymentID)
	}

	var accepted domain.AcceptedWithdrawal
	if err := c.getObject(ctx, "account/withdraw", params, true, &accepted); err != nil {
		return nil, err
	}

	return &accepted, nil
}

// GetOrder returns a single order, nil if the exchange has no such order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order *domain.Order
	if err := c.get(ctx, "account/getorder", Params{}.Add("uuid", orderID), true, &order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderHistory returns closed orders, restricted to market unless it is empty.
func (c *Client) GetOrderHistory(ctx context.Context, market string) ([]domain.HistoricOrder, error) {
	var params Params
	if market != "" {
		params = params.Add("market", market)
	}

	var orders []domain.HistoricOrder
	if err := c.get(ctx, "account/getorderhistory", params, true, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// GetWithdrawalHistory returns past withdrawals, restricted to currency unless it is empty.
func (c *Client) GetWithdrawalHistory(ctx context.Context, currency string) ([]domain.HistoricWithdrawal, error) {
	var params Params
	if currency != "" {
		params = params.Add("currency", currency)
	}

	var withdrawals []domain.HistoricWithdrawal
	if err := c.get(ctx, "account/getwithdrawalhistory", params, true, &withdrawals); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

// GetDepositHistory returns past deposits, restricted to currency unless it is empty.
func (c *Client) GetDepositHistory(ctx context.Context, currency string) ([]domain.HistoricDeposit, error) {
	var params Params
	if currency != "" {
		params = params.Add("currency", currency)
	}

	var deposits []domain.HistoricDeposit
	if err := c.get(ctx, "account/getdeposithistory", params, true, &deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}
