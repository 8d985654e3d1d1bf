package main

import (
	"context"
	"fmt"
	"os"

	"jumatrek/pkg/client"
	"jumatrek/pkg/config"
	"jumatrek/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const ServiceName = "trekctl"

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trekctl",
		Short:         "Operator tooling for the Juma Trek API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())
	rootCmd.AddCommand(statusCmd())

	return rootCmd
}

// env is what the database-backed commands share.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	clients *client.Client
}

func connect() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  logger.TEXT,
		Output:  os.Stderr,
		Service: ServiceName,
	})

	clients := client.NewClient()
	if err := clients.ConnectMongo(log, cfg.DatabaseURL, cfg.MongoConnTimeout); err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, clients: clients}, nil
}

func (e *env) close() {
	if err := e.clients.Close(context.Background()); err != nil {
		e.log.Warn("Failed to close connections", "error", err)
	}
}
