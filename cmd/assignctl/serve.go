package main

import (
	"context"

	"cleaning_assignments/internal/adapter/http/routes"
	"cleaning_assignments/internal/app"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (and the sweeper when SWEEP_INTERVAL is set)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(prometheus.DefaultRegisterer, func(ctx context.Context, a *app.App) error {
				return routes.Run(ctx, a)
			})
		},
	}
}
