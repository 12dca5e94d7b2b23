package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/freedaiy/intake/internal/app/ports"
	appservices "github.com/freedaiy/intake/internal/app/services"
	"github.com/freedaiy/intake/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the store diagnostics report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			cfg, resolution, err := openStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer resolution.Store.Close()
			return runStatus(cmd.Context(), cmd.OutOrStdout(), format, resolution, cfg.StorePresence())
		},
	}
}

func runStatus(ctx context.Context, w io.Writer, format string, resolution ports.StoreResolution, presence config.StorePresence) error {
	diagnostics := appservices.NewDiagnosticsService(resolution, func() appservices.ConfigPresence {
		return appservices.ConfigPresence{
			DatabaseURL:  presence.DatabaseURL,
			DatabaseName: presence.DatabaseName,
		}
	})
	return writeOutput(w, format, diagnostics.Status(ctx))
}
