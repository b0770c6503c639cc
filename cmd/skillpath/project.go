// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skillpath/internal/generate"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Suggest a portfolio project for a set of skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetString("skills")
		asJSON, _ := cmd.Flags().GetBool("json")

		p, err := generate.SuggestProject(cmd.Context(), newGenerator(), skills)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Printf("%s\n\n%s\n\nKey features:\n", p.ProjectTitle, p.Description)
		for _, f := range p.KeyFeatures {
			fmt.Printf("  - %s\n", f)
		}
		fmt.Println("\nTechnologies:")
		for _, t := range p.Technologies {
			fmt.Printf("  - %s\n", t)
		}
		return nil
	},
}

func init() {
	projectCmd.Flags().String("skills", "", "comma-separated skills the project should exercise")
	projectCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(projectCmd)
}
