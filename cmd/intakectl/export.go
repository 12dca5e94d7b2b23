package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freedaiy/intake/internal/app/ports"
)

func newExportCmd() *cobra.Command {
	var (
		filters []string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "export <collection>",
		Short: "List stored documents of one collection",
		Long: `Lists documents of the lead or subscriber collection in insertion order.
A listing failure makes the command exit with the store error instead of
printing an empty result.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ports.CollectionLead.String(), ports.CollectionSubscriber.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			collection := ports.CollectionName(args[0])
			if !collection.Valid() {
				return fmt.Errorf("unknown collection %q (want lead or subscriber)", args[0])
			}
			filter, err := parseFilters(filters)
			if err != nil {
				return err
			}
			_, resolution, err := openStore(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer resolution.Store.Close()
			if !resolution.Live {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: no live store, listing is empty")
			}
			return runExport(cmd.Context(), cmd.OutOrStdout(), format, resolution.Store, collection, ports.ListOptions{
				Filter: filter,
				Limit:  limit,
			})
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Exact-match filter key=value (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of documents (0 = no limit)")

	return cmd
}

func runExport(ctx context.Context, w io.Writer, format string, store ports.DocumentStore, collection ports.CollectionName, opts ports.ListOptions) error {
	docs := store.ListDocuments(ctx, collection, opts)
	if reporter, ok := store.(ports.ListFailureReporter); ok {
		if err := reporter.LastListError(); err != nil {
			return fmt.Errorf("list %s: %w", collection, err)
		}
	}
	return writeOutput(w, format, docs)
}

func parseFilters(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (want key=value)", item)
		}
		out[key] = value
	}
	return out, nil
}
