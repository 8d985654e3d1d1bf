package main

import (
	"context"
	"fmt"
	"time"

	mongoMigration "jumatrek/internal/migrations/mongo"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create collections, validators and indexes",
		Long: `Create every collection with its $jsonSchema validator and indexes.

Safe to run repeatedly; existing collections get their validator refreshed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect()
			if err != nil {
				return err
			}
			defer e.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db := e.clients.Mongo.Database(e.cfg.DatabaseName)
			if err := mongoMigration.RunMigration(ctx, db, e.log); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migration of %q completed.\n", e.cfg.DatabaseName)
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall migration deadline")
	return cmd
}
