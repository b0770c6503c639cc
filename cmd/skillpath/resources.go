// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skillpath/internal/generate"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Curate free learning resources for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		asJSON, _ := cmd.Flags().GetBool("json")

		rs, err := generate.FindResources(cmd.Context(), newGenerator(), topic)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rs)
		}

		if len(rs.YouTubeTutorials) > 0 {
			fmt.Println("YouTube tutorials:")
			for _, r := range rs.YouTubeTutorials {
				fmt.Printf("  - %s\n", r)
			}
		}
		if len(rs.Articles) > 0 {
			fmt.Println("Articles:")
			for _, r := range rs.Articles {
				fmt.Printf("  - %s\n", r)
			}
		}
		if rs.GoogleCodelab != "" {
			fmt.Printf("Codelab: %s\n", rs.GoogleCodelab)
		}
		return nil
	},
}

func init() {
	resourcesCmd.Flags().String("topic", "", "topic to find resources for")
	resourcesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(resourcesCmd)
}
