package domain

import "github.com/shopspring/decimal"

// OrderType side of a limit order as reported by the exchange.
type OrderType string

const (
	OrderTypeLimitBuy  OrderType = "LIMIT_BUY"
	OrderTypeLimitSell OrderType = "LIMIT_SELL"
)

// AcceptedOrder acknowledgement of a placed order.
type AcceptedOrder struct {
	UUID string `json:"uuid"`
}

// OpenOrder an order that is still resting on the book.
type OpenOrder struct {
	UUID              string          `json:"Uuid"`
	OrderUUID         string          `json:"OrderUuid"`
	Exchange          string          `json:"Exchange"`
	OrderType         OrderType       `json:"OrderType"`
	Quantity          decimal.Decimal `json:"Quantity"`
	QuantityRemaining decimal.Decimal `json:"QuantityRemaining"`
	Limit             decimal.Decimal `json:"Limit"`
	CommissionPaid    decimal.Decimal `json:"CommissionPaid"`
	Price             decimal.Decimal `json:"Price"`
	PricePerUnit      decimal.Decimal `json:"PricePerUnit"`
	Opened            Timestamp       `json:"Opened"`
	Closed            Timestamp       `json:"Closed"`
	CancelInitiated   bool            `json:"CancelInitiated"`
	ImmediateOrCancel bool            `json:"ImmediateOrCancel"`
	IsConditional     bool            `json:"IsConditional"`
}

// Order full state of a single order, open or closed.
type Order struct {
	AccountID         string          `json:"AccountId"`
	OrderUUID         string          `json:"OrderUuid"`
	Exchange          string          `json:"Exchange"`
	Type              OrderType       `json:"Type"`
	Quantity          decimal.Decimal `json:"Quantity"`
	QuantityRemaining decimal.Decimal `json:"QuantityRemaining"`
	Limit             decimal.Decimal `json:"Limit"`
	Reserved          decimal.Decimal `json:"Reserved"`
	CommissionPaid    decimal.Decimal `json:"CommissionPaid"`
	Price             decimal.Decimal `json:"Price"`
	PricePerUnit      decimal.Decimal `json:"PricePerUnit"`
	Opened            Timestamp       `json:"Opened"`
	Closed            Timestamp       `json:"Closed"`
	IsOpen            bool            `json:"IsOpen"`
	CancelInitiated   bool            `json:"CancelInitiated"`
	ImmediateOrCancel bool            `json:"ImmediateOrCancel"`
	IsConditional     bool            `json:"IsConditional"`
}

// HistoricOrder a closed order from the account history.
type HistoricOrder struct {
	OrderUUID         string          `json:"OrderUuid"`
	Exchange          string          `json:"Exchange"`
	TimeStamp         Timestamp       `json:"TimeStamp"`
	OrderType         OrderType       `json:"OrderType"`
	Limit             decimal.Decimal `json:"Limit"`
	Quantity          decimal.Decimal `json:"Quantity"`
	QuantityRemaining decimal.Decimal `json:"QuantityRemaining"`
	Commission        decimal.Decimal `json:"Commission"`
	Price             decimal.Decimal `json:"Price"`
	PricePerUnit      decimal.Decimal `json:"PricePerUnit"`
	IsConditional     bool            `json:"IsConditional"`
	ImmediateOrCancel bool            `json:"ImmediateOrCancel"`
}
