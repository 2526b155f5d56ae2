package main

import (
	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := repository.Open(ctx, repository.Config{
				DSN:         cfg.Database.DSN,
				DialTimeout: cfg.Database.DialTimeout,
				MaxConns:    cfg.Database.MaxConns,
			}, logger)
			if err != nil {
				return err
			}
			defer db.Close(logger)

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			logger.Info("schema is up to date", "dsn", cfg.Database.DSN)
			return nil
		},
	}
}
