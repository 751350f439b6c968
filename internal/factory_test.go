package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/config"
	"github.com/vadiminshakov/trex/internal/clients/bittrex"
	"github.com/vadiminshakov/trex/internal/services/trader"
)

func TestNewServiceProvider_Live(t *testing.T) {
	cfg := config.Default()
	cfg.APIKey = "key"
	cfg.APISecret = "secret"

	provider, err := NewServiceProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	client, ok := provider.Exchange().(*bittrex.Client)
	require.True(t, ok)
	assert.True(t, client.HasCredentials())
	assert.Nil(t, provider.Journal())
}

func TestNewServiceProvider_LiveWithoutCredentials(t *testing.T) {
	provider, err := NewServiceProvider(config.Default(), nil)
	require.NoError(t, err)

	client, ok := provider.Exchange().(*bittrex.Client)
	require.True(t, ok)
	assert.False(t, client.HasCredentials())
}

func TestNewServiceProvider_Simulate(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = config.ModeSimulate
	cfg.JournalDir = t.TempDir()

	provider, err := NewServiceProvider(cfg, zap.NewNop())
	require.NoError(t, err)

	_, ok := provider.Exchange().(*trader.SimulateTrader)
	require.True(t, ok)
	require.NotNil(t, provider.Journal())
	require.NoError(t, provider.Close())
}

func TestNewServiceProvider_SimulateWithoutJournal(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = config.ModeSimulate
	cfg.JournalDir = ""

	provider, err := NewServiceProvider(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, provider.Journal())
	require.NoError(t, provider.Close())
}

func TestNewServiceProvider_UnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = "paper"

	_, err := NewServiceProvider(cfg, zap.NewNop())
	require.ErrorIs(t, err, config.ErrInvalidMode)
}
