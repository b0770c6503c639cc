package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skillpath/internal/generate"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Explain a topic with an analogy and prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		asJSON, _ := cmd.Flags().GetBool("json")

		e, err := generate.ExplainTopic(cmd.Context(), newGenerator(), topic)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		}

		if e.Analogy != "" {
			fmt.Printf("Analogy: %s\n\n", e.Analogy)
		}
		fmt.Println(e.TechnicalDefinition)
		if len(e.Prerequisites) > 0 {
			fmt.Println("\nPrerequisites:")
			for _, p := range e.Prerequisites {
				fmt.Printf("  - %s\n", p)
			}
		}
		return nil
	},
}

func init() {
	tutorCmd.Flags().String("topic", "", "topic to explain")
	tutorCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(tutorCmd)
}
