// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the skillpath CLI. Each engine
// surface is a subcommand: synth builds a learning path, catalog manages
// the course catalogs, and project/quiz/resources/tutor call the
// auxiliary generators.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/skillpath/internal/genai"
	"github.com/pdiddy/skillpath/internal/secrets"
	"github.com/pdiddy/skillpath/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// logger is the process-wide zerolog logger, configured in the root
// command's pre-run.
var logger zerolog.Logger

const defaultAITimeout = 60 * time.Second

// rootCmd is the base command for the skillpath CLI.
var rootCmd = &cobra.Command{
	Use:   "skillpath",
	Short: "Personalized learning path synthesis with catalog recommendations",
	Long: `skillpath turns a user's current skills and goal into an ordered,
multi-step learning path. Topic sequences come from the Gemini API under a
strict JSON contract; each step is then matched against local course
catalogs by keyword overlap. Auxiliary commands generate a portfolio
project, a quiz, curated resources, or a tutor explanation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first so GEMINI_API_KEY from a dotenv file is visible to
		// the secrets fallback. A missing .env is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s

		verbose, _ := cmd.Flags().GetBool("verbose")
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./skillpath.yaml or ~/.config/skillpath/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("skillpath")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "skillpath"))
		}
	}

	viper.SetEnvPrefix("SKILLPATH")
	viper.AutomaticEnv()

	viper.SetDefault("ai.model", genai.DefaultModel)
	viper.SetDefault("catalog.udemy_path", filepath.Join("data", "udemy_courses.csv"))
	viper.SetDefault("catalog.coursera_path", filepath.Join("data", "coursera_courses.csv"))
	viper.SetDefault("catalog.index_path", filepath.Join("data", "index", "catalog.db"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newGenerator builds the Gemini client from config and credentials.
// The key may still be empty here; the adapter reports that as a
// configuration failure at call time.
func newGenerator() *genai.Client {
	key := viper.GetString("ai.api_key")
	if key == "" {
		key = secrets.Resolve(loadedSecrets, genai.CredentialKey)
	}

	timeout := viper.GetDuration("ai.timeout")
	if timeout == 0 {
		timeout = defaultAITimeout
	}

	return &genai.Client{
		APIKey: key,
		Model:  viper.GetString("ai.model"),
		HTTP:   &http.Client{Timeout: timeout},
	}
}

// catalogConfig assembles the catalog settings from viper.
func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		UdemyPath:    viper.GetString("catalog.udemy_path"),
		CourseraPath: viper.GetString("catalog.coursera_path"),
		IndexPath:    viper.GetString("catalog.index_path"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
