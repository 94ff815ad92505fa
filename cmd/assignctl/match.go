package main

import (
	"context"
	"encoding/json"

	response "cleaning_assignments/internal/adapter/http/dto/response"
	"cleaning_assignments/internal/app"
	"cleaning_assignments/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var c entities.MatchCriteria

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Print the ranked cleaners for a service window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(nil, func(ctx context.Context, a *app.App) error {
				ranked, err := a.Matching.Rank(ctx, c)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(response.FromRanking(ranked))
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&c.ServiceDate, "date", "", "service date, YYYY-MM-DD")
	f.StringVar(&c.StartTime, "start", "", "window start, HH:MM")
	f.StringVar(&c.EndTime, "end", "", "window end, HH:MM")
	f.StringVar(&c.ZipCode, "zip", "", "zip code")
	f.StringVar(&c.ServiceID, "service", "", "service id")
	for _, name := range []string{"date", "start", "end", "zip", "service"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
