// ABOUTME: CLI commands for exporting and importing the run log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the run log",
	Long: `Export every recorded run in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, can be imported)
  markdown   Markdown report (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout ("-" for stdout)
  --since        Only include runs since this date (YYYY-MM-DD, markdown only)

EXAMPLES:

  coach export json                        # Export all runs as JSON
  coach export json -o backup.json         # Save to file
  coach export yaml                        # Export as YAML
  coach export markdown --since 2025-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := renderExport(args[0], exportSince)
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Exported %s to %s", args[0], exportOutput))
		return nil
	},
}

// renderExport encodes the whole run log in format. since only applies to markdown.
func renderExport(format, since string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json":
		data, err = storage.ExportJSON(repo)
	case "yaml":
		data, err = storage.ExportYAML(repo)
	case "markdown":
		var from *time.Time
		if since != "" {
			t, perr := time.ParseInLocation("2006-01-02", since, time.Local)
			if perr != nil {
				return nil, fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", since)
			}
			from = &t
		}
		var md string
		md, err = storage.ExportMarkdown(repo, from)
		data = []byte(md)
	default:
		return nil, fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
	}
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	return data, nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import runs from a JSON or YAML export",
	Long: `Import runs from a file written by 'coach export json' or 'coach export yaml'.

The format is picked from the file extension (.yaml/.yml for YAML, JSON otherwise).
Duplicate entries (same ID) will cause an error.

EXAMPLES:

  coach import backup.json
  coach import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			err = storage.ImportYAML(repo, data)
		default:
			err = storage.ImportJSON(repo, data)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Imported from %s", filename))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include runs since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
