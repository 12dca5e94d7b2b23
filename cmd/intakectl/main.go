// Package main provides the intakectl operator CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/freedaiy/intake/internal/adapters/storage"
	"github.com/freedaiy/intake/internal/app/ports"
	"github.com/freedaiy/intake/internal/config"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intakectl",
		Short: "Inspect the FreeDAIY intake document store",
		Long: `intakectl connects to the store configured by DATABASE_URL and
DATABASE_NAME, the same way the API server does, and reports on it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("output", "o", "json", "Output format: json or yaml")

	rootCmd.AddCommand(
		newStatusCmd(),
		newExportCmd(),
	)
	return rootCmd
}

// openStore resolves the configured store. Logs go to stderr so stdout
// stays machine-readable.
func openStore(ctx context.Context, errOut io.Writer) (config.Config, ports.StoreResolution, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, ports.StoreResolution{}, err
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	resolution := storage.Resolve(ctx, cfg.Store, storage.Options{
		Timeout: cfg.Store.StoreTimeout(),
		Logger:  log,
	})
	return cfg, resolution, nil
}
