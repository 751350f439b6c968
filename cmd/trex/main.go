// Command trex is a terminal client for the Bittrex exchange. In simulate
// mode limit orders are filled against live prices without touching the account.
//
// Usage:
//
//	trex [flags] <command> [args]
//	trex --config trex.yaml balances
//	trex --mode simulate buy BTC-LTC 1 0.004
//	trex setup
//
// Credentials are read from BITTREX_API_KEY and BITTREX_API_SECRET, or from
// the .env file written by setup.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/config"
	"github.com/vadiminshakov/trex/internal"
	"github.com/vadiminshakov/trex/internal/logger"
	"github.com/vadiminshakov/trex/internal/setup"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.Get(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errUsage
	}

	name, cmdArgs := rest[0], rest[1:]
	if name == "setup" {
		configPath, envPath := setup.DefaultConfigFile, config.DefaultEnvFile
		if len(cmdArgs) > 0 {
			configPath = cmdArgs[0]
		}
		if len(cmdArgs) > 1 {
			envPath = cmdArgs[1]
		}
		return setup.RunTUI(configPath, envPath)
	}

	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	provider, err := internal.NewServiceProvider(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			log.Warn("failed to close provider", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := &cmdEnv{
		exchange:   provider.Exchange(),
		journal:    provider.Journal(),
		journalDir: cfg.JournalDir,
		markets:    cfg.Markets,
		out:        os.Stdout,
	}

	log.Debug("running command", zap.String("cmd", name), zap.String("mode", cfg.Mode))

	return dispatch(ctx, env, name, cmdArgs)
}
