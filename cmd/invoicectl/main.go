package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

var (
	logger *slog.Logger
	cfg    *common.Config
)

func main() {
	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Admin and batch tooling for the GST invoice analyzer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
			slog.SetDefault(logger)
			cfg = common.LoadConfig()
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newLoadHSNCmd(),
		newCreateUserCmd(),
		newExtractCmd(),
		newExportCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB dials the configured database and runs the schema migration so
// subcommands work against a fresh file without a separate migrate step.
func openDB(ctx context.Context) (*repository.DB, error) {
	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close(logger)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
