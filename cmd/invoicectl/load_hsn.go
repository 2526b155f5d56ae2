package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/internal/hsn"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func newLoadHSNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-hsn <csv-file>",
		Short: "Replace the HSN/GST reference table from a CSV file",
		Long: `Loads the reference table used for line-item enrichment and the bill
builder. The CSV must carry hsn_code, category, item_name and rate_of_gst
columns; header matching is case- and whitespace-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			entries, err := hsn.LoadCSV(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close(logger)

			repo := repository.NewHSNRepository(db.Ent, logger)
			n, err := repo.BulkLoad(ctx, entries)
			if err != nil {
				return err
			}
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			if total != n {
				return fmt.Errorf("reference table holds %d rows after loading %d", total, n)
			}
			fmt.Printf("loaded %d reference rows\n", n)
			return nil
		},
	}
}
