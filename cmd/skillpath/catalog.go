// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skillpath/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and index the local course catalogs",
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-platform catalog counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := catalog.Load(catalogConfig(), logger)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLATFORM\tCOURSES")
		for _, p := range store.Platforms() {
			fmt.Fprintf(w, "%s\t%d\n", p, len(store.Courses(p)))
		}
		fmt.Fprintf(w, "total\t%d\n", store.Len())
		for _, p := range store.Platforms() {
			if n := store.Dropped(p); n > 0 {
				fmt.Fprintf(w, "%s (dropped rows)\t%d\n", p, n)
			}
		}
		return w.Flush()
	},
}

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the full-text search index from the catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := catalogConfig()
		store := catalog.Load(cfg, logger)

		n, err := catalog.BuildIndex(cmd.Context(), store, cfg.IndexPath)
		if err != nil {
			return fmt.Errorf("building index: %w", err)
		}
		logger.Info().Int("courses", n).Str("path", cfg.IndexPath).Msg("index built")
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over the indexed catalogs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		cfg := catalogConfig()

		results, err := catalog.SearchIndex(cmd.Context(), cfg.IndexPath, args[0], limit)
		if err != nil {
			return fmt.Errorf("searching index: %w", err)
		}
		if len(results) == 0 {
			fmt.Println("No courses matched.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLATFORM\tTITLE\tURL")
		for _, c := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Platform, c.Title, c.URL)
		}
		return w.Flush()
	},
}

func init() {
	catalogSearchCmd.Flags().Int("limit", 20, "maximum number of results")

	catalogCmd.AddCommand(catalogStatsCmd)
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}
