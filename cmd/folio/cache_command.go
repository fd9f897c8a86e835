package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/store"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Response cache utilities",
	}
	cacheCmd.AddCommand(newCacheCleanupCommand(ctx))
	return cacheCmd
}

func newCacheCleanupCommand(ctx *commandContext) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete cached responses older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				retention := days
				if retention <= 0 {
					retention = cfg.Summarizer.CacheRetentionDays
				}
				removed, err := st.CleanupCache(cmd.Context(), retention)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cache entrie(s) older than %d days.\n", removed, retention)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Retention window in days (default: configured value)")
	return cmd
}
