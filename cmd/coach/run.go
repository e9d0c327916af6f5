// ABOUTME: CLI command that runs the coaching crew on a health snapshot.
// ABOUTME: Renders the summary, runs the three agents, writes the plans and records the run.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/coach"
	"github.com/harperreed/fitcoach/internal/llm"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/spf13/cobra"
)

var (
	runInput     = inputFlags{ask: true}
	runOutputDir string
	runProvider  string
	runModel     string
	runNoRecord  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze health data and write workout and nutrition plans",
	Long: `Run the fitness coach crew on a health snapshot.

The Research Assistant analyzes the comprehensive health summary. The two
content writers then turn that analysis into a workout plan and a nutrition
plan, written as Markdown files to the output directory.

INPUT:

  --sample         Use the built-in sample health data
  --input FILE     Read raw values from JSON (flat keys or grouped by section)
  (none)           Ask whether to use sample data, then ask the questionnaire

  Enter 'skip' (or nothing) for any metric you don't have.

OUTPUT:

  personalized_workout_plan.md
  personalized_nutrition_plan.md

EXAMPLES:

  coach run --sample --provider offline
  coach run --input health.json -o ~/plans
  coach run --full                       # ask for every metric`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if runProvider != "" {
			cfg.Provider = runProvider
		}
		if runModel != "" {
			cfg.Model = runModel
		}
		if runOutputDir != "" {
			cfg.OutputDir = runOutputDir
		}

		fmt.Fprintln(out, color.New(color.Bold).Sprint("Fitness Coach - Your Personal AI Fitness Coach"))
		fmt.Fprintln(out, strings.Repeat("=", 60))
		fmt.Fprintln(out, "This system analyzes your health data and creates personalized")
		fmt.Fprintln(out, "workout and nutrition plans tailored specifically for you.")
		fmt.Fprintln(out)

		snap, source, err := loadSnapshot(cmd, &runInput, time.Now())
		if err != nil {
			return err
		}

		gen, err := cfg.Generator(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = llm.Close(gen) }()

		fmt.Fprintf(out, "\nProcessing health data from: %s\n", snap.Timestamp.Format(summary.DateLayout))
		fmt.Fprintln(out, strings.Repeat("=", 60))

		pipeline := &coach.Pipeline{
			Generator: gen,
			Writer:    storage.NewArtifactDir(cfg.GetOutputDir()),
			Observer:  &progress{out: out},
		}

		fmt.Fprintf(out, "\nStarting AI fitness coach analysis with %s...\n", gen.Name())
		res, err := pipeline.Run(cmd.Context(), snap)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		color.New(color.FgGreen).Fprintln(out, "✓ AI Fitness Coach analysis completed!")
		fmt.Fprintln(out, strings.Repeat("=", 60))
		fmt.Fprintln(out, "Final Results:")
		fmt.Fprintln(out, res.Outputs[coach.TaskNutritionPlan])

		if len(res.Artifacts) == 0 {
			color.New(color.FgYellow).Fprintln(out, "\n⚠ No plan files were created.")
		} else {
			for _, a := range res.Artifacts {
				fmt.Fprintf(out, "\n%s created (%d bytes)\n", a.Path, a.Bytes)
			}
			color.New(color.FgGreen).Fprintf(out, "\n✓ Success! Created %d personalized plan(s):\n", len(res.Artifacts))
			for _, a := range res.Artifacts {
				fmt.Fprintf(out, "   • %s\n", a.Name)
			}
			fmt.Fprintln(out, "\nYour personalized fitness and nutrition plans are ready!")
		}

		if runNoRecord {
			return nil
		}
		run := res.Run(source, snap.Timestamp)
		if err := repo.CreateRun(run); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
		logger.Info("run recorded", "id", run.ShortID(), "source", run.Source)
		fmt.Fprintf(out, "%s\n", color.New(color.Faint).Sprintf("Run %s recorded. View it with 'coach runs show %s'.", run.ShortID(), run.ShortID()))
		return nil
	},
}

// progress prints one line per agent stage.
type progress struct {
	out io.Writer
}

func (p *progress) StageStarted(t coach.Task) {
	fmt.Fprintf(p.out, "\n→ %s: %s\n", t.Agent.Role, t.Name)
}

func (p *progress) StageFinished(t coach.Task, output string, elapsed time.Duration) {
	fmt.Fprintf(p.out, "  %s %s (%d characters, %s)\n",
		color.GreenString("✓"), t.Name, len(output), elapsed.Round(time.Millisecond))
}

func init() {
	runInput.register(runCmd)
	runCmd.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "directory for the plan files (default: config output_dir or .)")
	runCmd.Flags().StringVar(&runProvider, "provider", "", "text generator: openai, gemini or offline")
	runCmd.Flags().StringVar(&runModel, "model", "", "model name for the provider")
	runCmd.Flags().BoolVar(&runNoRecord, "no-record", false, "do not store the run in the run log")
	rootCmd.AddCommand(runCmd)
}
