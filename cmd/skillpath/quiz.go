// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/skillpath/internal/generate"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a multiple-choice quiz for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")
		withAnswers, _ := cmd.Flags().GetBool("answers")

		q, err := generate.BuildQuiz(cmd.Context(), newGenerator(), topic, count)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(q)
		}

		for i, question := range q.Questions {
			fmt.Printf("%d. %s\n", i+1, question.Question)
			for j, opt := range question.Options {
				fmt.Printf("   %c) %s\n", 'a'+j, opt)
			}
			if withAnswers {
				fmt.Printf("   Answer: %s\n", question.CorrectAnswer)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().String("topic", "", "topic to quiz on")
	quizCmd.Flags().Int("count", generate.DefaultQuizQuestions, "number of questions")
	quizCmd.Flags().Bool("answers", false, "print the correct answers")
	quizCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(quizCmd)
}
