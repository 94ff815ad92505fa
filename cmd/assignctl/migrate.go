package main

import (
	"errors"

	"cleaning_assignments/internal/infrastructure/config"
	"cleaning_assignments/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var down int

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back) the postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer e.close()

			if e.cfg.StorageBackend != config.BackendPostgres {
				return errors.New("migrate needs STORAGE_BACKEND=postgres")
			}
			if down > 0 {
				if err := database.RollbackMigrations(e.cfg.DatabaseURL, down); err != nil {
					return err
				}
				e.logger.Info("[migrate] rolled back", "steps", down)
				return nil
			}
			return database.RunMigrations(e.cfg.DatabaseURL, e.logger)
		},
	}

	c.Flags().IntVar(&down, "down", 0, "roll back this many migrations instead of applying")
	return c
}
