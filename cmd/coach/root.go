// ABOUTME: Root Cobra command for the coach CLI.
// ABOUTME: Loads config, sets up logging and opens the run log via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fitcoach/internal/config"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/spf13/cobra"
)

// noStorage marks commands that run without opening the run log.
const noStorage = "no-storage"

var (
	cfg     *config.Config
	repo    storage.Repository
	verbose bool
	backend string
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "AI fitness coach: health summary, workout plan and nutrition plan",
	Long: `Coach turns a snapshot of your health metrics into a personalized
analysis, workout plan and nutrition plan using three AI agents.

THE CREW:

  Research Assistant          analyzes your health data
  Content Writer - Fitness    writes personalized_workout_plan.md
  Content Writer - Nutrition  writes personalized_nutrition_plan.md

QUICK START:

  $ coach run --sample               # Demo with the built-in sample data
  $ coach run                        # Answer the health questionnaire
  $ coach run --input health.json    # Read raw values from a JSON file
  $ coach summary --input health.json
  $ coach runs list                  # See earlier runs

PROVIDERS:

  openai (default)   needs OPENAI_API_KEY (OPENAI_BASE_URL for compatible gateways)
  gemini             needs GEMINI_API_KEY
  offline            deterministic drafts, no network

  Select with --provider or COACH_PROVIDER. A .env file in the working
  directory is loaded on startup.

MCP INTEGRATION:

  Run 'coach mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "coach": { "command": "coach", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Runs are stored in SQLite at ~/.local/share/coach/coach.db by default.
  Set "backend" in ~/.config/coach/config.json to "markdown" or "charm".`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backend != "" {
			cfg.Backend = backend
		}

		logCfg := cfg.LoggerConfig()
		if verbose {
			logCfg.Level = "debug"
		}
		logger.Init(logCfg)

		if cmd.Annotations[noStorage] == "true" || cmd.Name() == "help" {
			return nil
		}

		// A failed command skips PersistentPostRunE, so a repo may still be open.
		if repo != nil {
			_ = repo.Close()
		}
		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", cfg.GetBackend(), err)
		}
		logger.Debug("storage opened", "backend", cfg.GetBackend())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: sqlite, markdown or charm")
}
