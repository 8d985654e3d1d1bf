package main

import (
	"fmt"
	"strings"
	"time"

	"jumatrek/pkg/client"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the diagnostics of a running API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := client.NewAPIClient(apiURL)
			api.HTTP().HTTPClient.Timeout = timeout

			d, err := api.Diagnostics(cmd.Context())
			if err != nil {
				return fmt.Errorf("API unreachable at %s: %w", apiURL, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Juma Trek API")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "  Backend:     %s\n", d.Backend)
			fmt.Fprintf(out, "  Database:    %s\n", d.Database)
			fmt.Fprintf(out, "  Name:        %s\n", valueOrDefault(d.DatabaseName, "unknown"))
			fmt.Fprintf(out, "  URL:         %s\n", valueOrDefault(d.DatabaseURL, "unknown"))
			fmt.Fprintf(out, "  Connection:  %s\n", d.ConnectionStatus)
			fmt.Fprintf(out, "  Collections: %s\n", valueOrDefault(strings.Join(d.Collections, ", "), "none"))
			if d.AdminOpenMode {
				fmt.Fprintln(out, "  WARNING: admin endpoints are open")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "http://localhost:8000", "base URL of the API")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
