// Package internal wires configuration into a ready exchange.
package internal

import (
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/config"
	"github.com/vadiminshakov/trex/internal/clients/bittrex"
	"github.com/vadiminshakov/trex/internal/services/trader"
	"github.com/vadiminshakov/trex/internal/storage/filljournal"
	"github.com/vadiminshakov/trex/pkg/retrier"
)

var _ trader.Exchange = (*bittrex.Client)(nil)

// ServiceProvider builds the exchange for the configured mode and owns
// whatever it opened along the way.
type ServiceProvider interface {
	Exchange() trader.Exchange
	// Journal is nil in live mode.
	Journal() *filljournal.WALStore
	Close() error
}

// NewServiceProvider dispatches on cfg.Mode.
func NewServiceProvider(cfg config.Config, logger *zap.Logger) (ServiceProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := newClient(cfg, logger)

	switch cfg.Mode {
	case config.ModeLive:
		return &liveProvider{client: client}, nil
	case config.ModeSimulate:
		return newSimulateProvider(cfg, client, logger)
	default:
		return nil, errors.Wrapf(config.ErrInvalidMode, "got %q", cfg.Mode)
	}
}

func newClient(cfg config.Config, logger *zap.Logger) *bittrex.Client {
	opts := []bittrex.Option{
		bittrex.WithBaseURL(cfg.BaseURL),
		bittrex.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		bittrex.WithLogger(logger.Named("bittrex")),
		bittrex.WithRetryOptions(
			retrier.WithMaxRetries(cfg.Retry.MaxRetries),
			retrier.WithInitialInterval(cfg.Retry.InitialInterval),
			retrier.WithMaxInterval(cfg.Retry.MaxInterval),
			retrier.WithMultiplier(cfg.Retry.Multiplier),
		),
	}
	if cfg.HasCredentials() {
		opts = append(opts, bittrex.WithCredentials(cfg.APIKey, cfg.APISecret))
	}

	return bittrex.NewClient(opts...)
}

type liveProvider struct {
	client *bittrex.Client
}

func (p *liveProvider) Exchange() trader.Exchange {
	return p.client
}

func (p *liveProvider) Journal() *filljournal.WALStore {
	return nil
}

func (p *liveProvider) Close() error {
	return nil
}

type simulateProvider struct {
	sim     *trader.SimulateTrader
	journal *filljournal.WALStore
}

func newSimulateProvider(cfg config.Config, client *bittrex.Client, logger *zap.Logger) (*simulateProvider, error) {
	var opts []trader.SimulateOption

	var journal *filljournal.WALStore
	if cfg.JournalDir != "" {
		j, err := filljournal.NewWALStore(cfg.JournalDir)
		if err != nil {
			return nil, errors.Wrap(err, "open fill journal")
		}
		journal = j
		opts = append(opts, trader.WithFillJournal(journal))
	}

	sim, err := trader.NewSimulateTrader(client, logger.Named("simulate"), opts...)
	if err != nil {
		if journal != nil {
			_ = journal.Close()
		}
		return nil, err
	}

	return &simulateProvider{sim: sim, journal: journal}, nil
}

func (p *simulateProvider) Exchange() trader.Exchange {
	return p.sim
}

func (p *simulateProvider) Journal() *filljournal.WALStore {
	return p.journal
}

func (p *simulateProvider) Close() error {
	if p.journal == nil {
		return nil
	}

	return p.journal.Close()
}
