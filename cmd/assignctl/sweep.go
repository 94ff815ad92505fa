package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cleaning_assignments/internal/app"

	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var (
		loop     bool
		interval time.Duration
	)

	c := &cobra.Command{
		Use:   "sweep",
		Short: "Expire assignment attempts whose response window has lapsed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(nil, func(ctx context.Context, a *app.App) error {
				if loop {
					if interval <= 0 {
						interval = a.Config.SweepInterval
					}
					err := a.Sweeper.Run(ctx, interval)
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}

				res, err := a.Sweeper.Sweep(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "expired=%d skipped=%d failed=%d\n", res.Expired, res.Skipped, res.Failed)
				return nil
			})
		},
	}

	c.Flags().BoolVar(&loop, "loop", false, "keep sweeping until interrupted")
	c.Flags().DurationVar(&interval, "interval", 0, "time between sweeps with --loop (default SWEEP_INTERVAL)")
	return c
}
