package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/internal/export"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func newExportCmd() *cobra.Command {
	var (
		email   string
		format  string
		from    string
		to      string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's invoices to CSV, JSON or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close(logger)

			user, err := repository.NewUserRepository(db.Ent, logger).GetByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("user %q: %w", email, err)
			}

			fromDate, err := parseFlagDate(from)
			if err != nil {
				return err
			}
			toDate, err := parseFlagDate(to)
			if err != nil {
				return err
			}

			svc := export.NewService(repository.NewInvoiceRepository(db.Ent, logger), logger)
			var data []byte
			switch format {
			case "csv":
				data, err = svc.ExportCSV(ctx, user.ID, fromDate, toDate)
			case "json":
				data, err = svc.ExportJSON(ctx, user.ID, fromDate, toDate)
			case "xlsx":
				data, err = svc.ExportXLSX(ctx, user.ID, fromDate, toDate)
			default:
				return fmt.Errorf("unknown format %q (want csv, json or xlsx)", format)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = fmt.Sprintf("invoices-%s.%s", time.Now().Format("20060102"), format)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", outPath, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account to export")
	cmd.Flags().StringVar(&format, "format", "csv", "csv, json or xlsx")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func parseFlagDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}
