package domain

import "github.com/shopspring/decimal"

// CurrencyBalance account balance of one currency.
type CurrencyBalance struct {
	Currency      string          `json:"Currency"`
	Balance       decimal.Decimal `json:"Balance"`
	Available     decimal.Decimal `json:"Available"`
	Pending       decimal.Decimal `json:"Pending"`
	CryptoAddress string          `json:"CryptoAddress"`
}

// DepositAddress address to send funds of a currency to.
type DepositAddress struct {
	Currency string `json:"Currency"`
	Address  string `json:"Address"`
}

// AcceptedWithdrawal acknowledgement of a withdrawal request.
type AcceptedWithdrawal struct {
	UUID string `json:"uuid"`
}

// HistoricWithdrawal a past withdrawal.
type HistoricWithdrawal struct {
	PaymentUUID    string          `json:"PaymentUuid"`
	Currency       string          `json:"Currency"`
	Amount         decimal.Decimal `json:"Amount"`
	Address        string          `json:"Address"`
	Opened         Timestamp       `json:"Opened"`
	Authorized     bool            `json:"Authorized"`
	PendingPayment bool            `json:"PendingPayment"`
	TxCost         decimal.Decimal `json:"TxCost"`
	TxID           string          `json:"TxId"`
	Canceled       bool            `json:"Canceled"`
	InvalidAddress bool            `json:"InvalidAddress"`
}

// HistoricDeposit a past deposit.
type HistoricDeposit struct {
	ID            int64           `json:"Id"`
	Amount        decimal.Decimal `json:"Amount"`
	Currency      string          `json:"Currency"`
	Confirmations int             `json:"Confirmations"`
	LastUpdated   Timestamp       `json:"LastUpdated"`
	TxID          string          `json:"TxId"`
	CryptoAddress string          `json:"CryptoAddress"`
}
