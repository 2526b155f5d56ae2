package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/internal/auth"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func newCreateUserCmd() *cobra.Command {
	var (
		name     string
		email    string
		aadhaar  string
		password string
		userType string
	)
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account without going through the signup page",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close(logger)

			users := repository.NewUserRepository(db.Ent, logger)
			svc := auth.NewService(users, auth.NewSessionStore(0), logger)
			user, err := svc.Signup(ctx, auth.SignupRequest{
				Name:     name,
				Email:    email,
				Aadhaar:  aadhaar,
				Password: password,
				UserType: userType,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&aadhaar, "aadhaar", "", "12-digit Aadhaar number")
	cmd.Flags().StringVar(&password, "password", "", "password (8+ characters)")
	cmd.Flags().StringVar(&userType, "type", "", "account type (TRADER or ACCOUNTANT)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("aadhaar")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
