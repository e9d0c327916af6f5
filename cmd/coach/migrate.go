// ABOUTME: CLI command for copying the run log to another backend.
// ABOUTME: Moves runs between sqlite, markdown and charm storage.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/config"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo      string
	migrateDataDir string
	migrateDryRun  bool
	migrateForce   bool
	migrateSave    bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the run log to another storage backend",
	Long: `Copy every run from the current backend to another one.

The destination must be empty unless --force is given. Runs keep their IDs,
so a second migration into the same destination fails on the first duplicate.

USAGE:

  coach migrate --to markdown --dry-run     # Preview what would be migrated
  coach migrate --to markdown               # Copy runs to markdown files
  coach migrate --to markdown --save        # ...and make markdown the default

BACKENDS:

  sqlite     ~/.local/share/coach/coach.db
  markdown   ~/.local/share/coach/runs/YYYY/MM/*.md
  charm      Charm KV with E2E encrypted cloud sync`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if migrateTo == "" {
			return fmt.Errorf("--to is required (sqlite, markdown, or charm)")
		}
		if migrateTo == cfg.GetBackend() && migrateDataDir == "" {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		dst := *cfg
		dst.Backend = migrateTo
		if migrateDataDir != "" {
			dst.DataDir = migrateDataDir
		}

		runs, err := repo.ListRuns(0)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}

		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintf(out, "Would copy %d run(s) from %s to %s (%s)\n",
				len(runs), cfg.GetBackend(), migrateTo, dst.GetDataDir())
			return nil
		}

		if !migrateForce {
			nonEmpty, err := destinationHasData(&dst)
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination %s already has data (use --force to merge)", migrateTo)
			}
		}

		target, err := dst.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s storage: %w", migrateTo, err)
		}
		defer target.Close()

		summary, err := storage.MigrateData(repo, target)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		fmt.Fprintln(out, color.GreenString("✓ Migrated %d run(s) with %d plan record(s) to %s",
			summary.Runs, summary.Artifacts, migrateTo))

		if migrateSave {
			cfg.Backend = dst.Backend
			cfg.DataDir = dst.DataDir
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(out, "Default backend is now %s\n", migrateTo)
		}
		return nil
	},
}

// destinationHasData reports whether the destination backend already holds runs.
func destinationHasData(dst *config.Config) (bool, error) {
	switch dst.GetBackend() {
	case config.BackendMarkdown:
		return storage.IsDirNonEmpty(filepath.Join(dst.GetDataDir(), "runs"))
	default:
		target, err := dst.OpenStorage()
		if err != nil {
			return false, fmt.Errorf("failed to open %s storage: %w", dst.GetBackend(), err)
		}
		runs, err := target.ListRuns(1)
		if dst.GetBackend() != config.BackendCharm {
			_ = target.Close()
		}
		if err != nil {
			return false, err
		}
		return len(runs) > 0, nil
	}
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite, markdown or charm")
	migrateCmd.Flags().StringVar(&migrateDataDir, "data-dir", "", "destination data directory (default: same as source)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "copy even if the destination has data")
	migrateCmd.Flags().BoolVar(&migrateSave, "save", false, "make the destination the default backend")
	rootCmd.AddCommand(migrateCmd)
}
