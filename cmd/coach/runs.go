// ABOUTME: CLI commands for browsing the run log.
// ABOUTME: List, show and delete runs by full ID or ID prefix.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	runsLimit   int
	showSection string
)

var runsCmd = &cobra.Command{
	Use:     "runs",
	Aliases: []string{"r"},
	Short:   "Browse earlier coaching runs",
	Long: `Browse the run log. Every 'coach run' records its summary, analysis and
both plans so you can look at them again later.

COMMANDS:

  list      List recent runs
  show      Show one run
  delete    Delete a run`,
}

var runsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent runs",
	Long: `List recent runs, newest first.

OUTPUT FORMAT:

  Each line shows: ID  CREATED  SOURCE  GENERATOR  PLANS

  The ID is an 8-character prefix you can use with show and delete.

EXAMPLES:

  coach runs list
  coach runs list -n 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		runs, err := repo.ListRuns(runsLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range runs {
			fmt.Fprintf(out, "%s %s %s %s %d plan(s)\n",
				faint.Sprint(r.ShortID()),
				faint.Sprint(r.CreatedAt.Local().Format("2006-01-02 15:04")),
				padRight(string(r.Source), 12),
				padRight(truncate(generatorName(r), 28), 28),
				len(r.Artifacts))
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a run",
	Long: `Show a run's analysis and plans as Markdown.

Use --section to print one part only: summary, analysis, workout or nutrition.

EXAMPLES:

  coach runs show abc12345
  coach runs show abc1 --section workout > plan.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		r, err := repo.GetRun(args[0])
		if err != nil {
			return fmt.Errorf("run not found: %s", args[0])
		}

		switch strings.ToLower(showSection) {
		case "":
			fmt.Fprintf(out, "%s %s\n", color.New(color.Faint).Sprint("Source:"), r.Source)
			fmt.Fprintf(out, "%s %s\n", color.New(color.Faint).Sprint("Generator:"), generatorName(r))
			for _, a := range r.Artifacts {
				fmt.Fprintf(out, "%s %s (%d bytes)\n", color.New(color.Faint).Sprint("Plan:"), a.Path, a.Bytes)
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, storage.RunMarkdown(r))
		case "summary":
			fmt.Fprint(out, r.Summary)
		case "analysis":
			fmt.Fprintln(out, r.Analysis)
		case "workout":
			fmt.Fprintln(out, r.WorkoutPlan)
		case "nutrition":
			fmt.Fprintln(out, r.NutritionPlan)
		default:
			return fmt.Errorf("unknown section: %s (use summary, analysis, workout, or nutrition)", showSection)
		}
		return nil
	},
}

var runsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a run",
	Long: `Delete a run by its ID or ID prefix.

Plan files already written to disk are left alone.

CAUTION:

  This permanently deletes the run. There is no undo.
  If the prefix matches multiple runs, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		r, err := repo.GetRun(args[0])
		if err != nil {
			return fmt.Errorf("run not found: %s", args[0])
		}

		if err := repo.DeleteRun(r.ID.String()); err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}

		fmt.Fprintln(out, color.YellowString("✗ Deleted run %s", r.ShortID()))
		fmt.Fprintf(out, "  %s %s\n",
			color.New(color.Faint).Sprint(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			generatorName(r))
		return nil
	},
}

func generatorName(r *models.Run) string {
	if r.Model == "" {
		return r.Provider
	}
	return r.Provider + "/" + r.Model
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "max number of results")
	runsShowCmd.Flags().StringVarP(&showSection, "section", "s", "", "print one section: summary, analysis, workout or nutrition")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
	rootCmd.AddCommand(runsCmd)
}
