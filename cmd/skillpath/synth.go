// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/skillpath/internal/catalog"
	"github.com/pdiddy/skillpath/internal/genai"
	"github.com/pdiddy/skillpath/internal/match"
	"github.com/pdiddy/skillpath/internal/synth"
	"github.com/pdiddy/skillpath/pkg/types"
)

// backoffBase is the base delay for exponential backoff between retry
// attempts. Package-level so tests can shrink it.
var backoffBase = 1 * time.Second

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a personalized learning path",
	Long: `Synth asks the AI service for an ordered topic sequence matching the
user's skills and goal, then recommends courses for each step from the
local Udemy and Coursera catalogs. Output is a human-readable outline by
default; use --json for the wire shape or --out to write YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := types.GoalInput{}
		input.CurrentSkills, _ = cmd.Flags().GetString("skills")
		input.Goal, _ = cmd.Flags().GetString("goal")
		input.Experience, _ = cmd.Flags().GetString("experience")
		input.LearningStyle, _ = cmd.Flags().GetString("style")

		retries, _ := cmd.Flags().GetInt("retries")
		asJSON, _ := cmd.Flags().GetBool("json")
		outPath, _ := cmd.Flags().GetString("out")

		store := catalog.Load(catalogConfig(), logger)
		logger.Info().Int("courses", store.Len()).Msg("catalog loaded")

		s := &synth.Synthesizer{
			Gen:        newGenerator(),
			Catalog:    store,
			MaxCourses: viper.GetInt("synthesis.max_courses"),
		}

		path, err := synthesizeWithRetry(cmd.Context(), s, input, retries)
		if err != nil {
			return err
		}

		if outPath != "" {
			data, err := yaml.Marshal(path)
			if err != nil {
				return fmt.Errorf("marshaling plan: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			logger.Info().Str("path", outPath).Int("steps", len(path.RecommendedCourses)).Msg("plan written")
			return nil
		}
		if asJSON {
			return synth.FormatJSON(path, os.Stdout)
		}
		synth.FormatTable(path, os.Stdout)
		return nil
	},
}

// synthesizeWithRetry retries transient upstream failures with
// exponential backoff. Validation and configuration failures are never
// retried; they cannot heal on their own.
func synthesizeWithRetry(ctx context.Context, s *synth.Synthesizer, input types.GoalInput, maxRetries int) (*types.LearningPath, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		path, err := s.Synthesize(ctx, input)
		if err == nil {
			return path, nil
		}

		var transportErr *genai.TransportError
		if !errors.As(err, &transportErr) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

func init() {
	synthCmd.Flags().String("skills", "", "comma-separated current skills")
	synthCmd.Flags().String("goal", "", "target role or learning goal")
	synthCmd.Flags().String("experience", "", "experience level (e.g. beginner, intermediate)")
	synthCmd.Flags().String("style", "", "preferred learning style (e.g. videos, projects)")
	synthCmd.Flags().Int("retries", 0, "retry transient upstream failures N times")
	synthCmd.Flags().Bool("json", false, "print the plan as JSON")
	synthCmd.Flags().String("out", "", "write the plan as YAML to this file")
	synthCmd.Flags().Int("max-courses", match.DefaultMaxCourses, "maximum courses recommended per step")

	_ = viper.BindPFlag("synthesis.max_courses", synthCmd.Flags().Lookup("max-courses"))

	rootCmd.AddCommand(synthCmd)
}
