// ABOUTME: CLI commands that render health summaries without running the agents.
// ABOUTME: 'summary' renders any snapshot source; 'sample' prints the built-in sample.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/spf13/cobra"
)

var (
	summaryInput inputFlags
	summaryJSON  bool
	sampleJSON   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Render the comprehensive health summary",
	Long: `Render the comprehensive health data summary the agents receive.

Values that are missing, skipped or not numbers show as N/A, Not provided
or Not specified. BMI is computed from weight and height.

EXAMPLES:

  coach summary --input health.json
  cat health.json | coach summary --input -
  coach summary                         # answer the questionnaire
  coach summary --input health.json --json`,
	Annotations: map[string]string{noStorage: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, _, err := loadSnapshot(cmd, &summaryInput, time.Now())
		if err != nil {
			return err
		}
		return printSnapshot(cmd, snap, summaryJSON)
	},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample health data",
	Long: `Print the sample health snapshot used for demos.

EXAMPLES:

  coach sample          # as the text summary
  coach sample --json   # as JSON, a starting point for --input files`,
	Annotations: map[string]string{noStorage: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSnapshot(cmd, models.SampleSnapshot(time.Now()), sampleJSON)
	},
}

func printSnapshot(cmd *cobra.Command, snap *models.Snapshot, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprint(out, summary.Render(snap))
	return nil
}

func init() {
	summaryInput.register(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the snapshot as JSON instead")
	sampleCmd.Flags().BoolVar(&sampleJSON, "json", false, "print the snapshot as JSON instead")
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sampleCmd)
}
