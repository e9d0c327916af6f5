// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server exposing summaries, the run log and the coaching crew.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitcoach/internal/coach"
	"github.com/harperreed/fitcoach/internal/llm"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/mcp"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "coach": {
        "command": "coach",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  sample_snapshot   Built-in sample health data (summary or JSON)
  render_summary    Render the health summary for raw values
  run_coach         Run the three agents and record the run
  list_runs         List recent coaching runs
  get_run           Get a run with its analysis and plans
  delete_run        Delete a run by ID

  run_coach is only available when a text generator is configured
  (OPENAI_API_KEY, GEMINI_API_KEY, or COACH_PROVIDER=offline).

AVAILABLE RESOURCES:

  coach://sample          Sample health summary
  coach://runs/recent     Recent runs as JSON
  coach://runs/latest     Latest run as Markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var pipeline *coach.Pipeline
		gen, err := cfg.Generator(ctx)
		if err != nil {
			logger.Warn("run_coach disabled", "provider", cfg.GetProvider(), "error", err)
		} else {
			defer func() { _ = llm.Close(gen) }()
			pipeline = &coach.Pipeline{
				Generator: gen,
				Writer:    storage.NewArtifactDir(cfg.GetOutputDir()),
			}
		}

		server, err := mcp.NewServer(repo, pipeline)
		if err != nil {
			return err
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
