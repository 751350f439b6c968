package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		name    string
		market  string
		want    Pair
		wantErr bool
	}{
		{name: "btc market", market: "BTC-LTC", want: Pair{Base: "BTC", Target: "LTC"}},
		{name: "usdt market", market: "USDT-ETH", want: Pair{Base: "USDT", Target: "ETH"}},
		{name: "underscore separator", market: "BTC_LTC", wantErr: true},
		{name: "missing target", market: "BTC-", wantErr: true},
		{name: "missing base", market: "-LTC", wantErr: true},
		{name: "too many segments", market: "BTC-LTC-ETH", wantErr: true},
		{name: "empty", market: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePair(tt.market)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMarket)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.market, got.String())
		})
	}
}

func TestTargetCurrency(t *testing.T) {
	currency, err := TargetCurrency("BTC-LTC")
	require.NoError(t, err)
	assert.Equal(t, "LTC", currency)

	_, err = TargetCurrency("BTCLTC")
	assert.ErrorIs(t, err, ErrInvalidMarket)
}
