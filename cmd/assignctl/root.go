package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cleaning_assignments/internal/app"
	"cleaning_assignments/internal/infrastructure/config"
	"cleaning_assignments/internal/infrastructure/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assignctl",
		Short:         "Operate the cleaning assignment service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version + " (" + CommitSHA + ")",
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newMatchCmd())
	return root
}

// env is what every subcommand needs before it can do anything.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	close  func() error
}

func loadEnv() (env, error) {
	cfg, err := config.Load()
	if err != nil {
		return env{}, err
	}
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return env{}, err
	}
	return env{cfg: cfg, logger: logger, close: closeLog}, nil
}

// withApp builds the service, runs fn and tears everything down. ctx is
// cancelled on SIGINT or SIGTERM.
func withApp(reg prometheus.Registerer, fn func(ctx context.Context, a *app.App) error) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, e.cfg, e.logger, reg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
