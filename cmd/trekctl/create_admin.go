package main

import (
	"fmt"

	"jumatrek/internal/admins/repository"
	"jumatrek/internal/admins/service"
	"jumatrek/internal/store"
	"jumatrek/internal/validation"
	"jumatrek/pkg/model"

	"github.com/spf13/cobra"
)

// createAdminCmd writes straight to the store, which is how the first admin
// gets in while the HTTP endpoint still requires one.
func createAdminCmd() *cobra.Command {
	var (
		email    string
		password string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account directly in the database",
		Example: `  trekctl create-admin --email ops@jumatrek.com --password 's3cret'
  trekctl create-admin --email guide@jumatrek.com --password 'pw' --full-name 'Lead Guide'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect()
			if err != nil {
				return err
			}
			defer e.close()

			gw := store.NewMongoGateway(e.clients.Mongo.Database(e.cfg.DatabaseName), store.Timeouts{
				Read:  e.cfg.ReadTimeout,
				Write: e.cfg.WriteTimeout,
			})
			svc := service.NewAdminService(repository.NewAdminUserRepository(gw), validation.New(), nil, e.cfg.LegacyToken(), e.log)

			req := &model.CreateAdminRequest{Email: email, Password: password}
			if fullName != "" {
				req.FullName = &fullName
			}

			id, err := svc.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", req.Email, id)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email (required)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
