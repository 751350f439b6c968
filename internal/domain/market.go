// Package domain defines the exchange data structures shared by the live client and the simulator.
package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// MarketSeparator separates base and target currency in a market name.
const MarketSeparator = "-"

// ErrInvalidMarket is returned for market names that are not BASE-TARGET.
var ErrInvalidMarket = errors.New("invalid market name")

// Pair cryptocurrency market in Bittrex notation, e.g. BTC-LTC.
type Pair struct {
	// Base currency the market is priced in.
	Base string
	// Target currency that is bought or sold.
	Target string
}

// ParsePair splits a market name like BTC-LTC into its currencies.
func ParsePair(market string) (Pair, error) {
	parts := strings.Split(market, MarketSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, errors.Wrapf(ErrInvalidMarket, "%q", market)
	}

	return Pair{Base: parts[0], Target: parts[1]}, nil
}

// String returns the market name.
func (p Pair) String() string {
	return p.Base + MarketSeparator + p.Target
}

// TargetCurrency returns the second segment of a market name. Simulated fills
// credit and debit this currency.
func TargetCurrency(market string) (string, error) {
	pair, err := ParsePair(market)
	if err != nil {
		return "", err
	}

	return pair.Target, nil
}
