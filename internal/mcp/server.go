// ABOUTME: MCP server setup for the fitness coach.
// ABOUTME: Wraps the MCP server with the run log and an optional coaching pipeline.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/fitcoach/internal/coach"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "coach"
	serverVersion = "1.0.0"
)

const instructions = `Fitness coach tools. render_summary turns raw health values (text tokens, "skip" for unknown) ` +
	`into the comprehensive health summary. run_coach, when available, runs the research assistant and ` +
	`the two content writers and records the run. Earlier runs are in list_runs and get_run.`

// Server exposes summaries, the run log and the coaching crew over MCP.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	pipeline  *coach.Pipeline
	now       func() time.Time
}

// NewServer builds a server over repo. The run_coach tool is only registered when pipeline is non-nil.
func NewServer(repo storage.Repository, pipeline *coach.Pipeline) (*Server, error) {
	s := &Server{
		mcpServer: mcp.NewServer(
			&mcp.Implementation{Name: serverName, Version: serverVersion},
			&mcp.ServerOptions{Instructions: instructions},
		),
		repo:     repo,
		pipeline: pipeline,
		now:      time.Now,
	}

	s.registerTools()
	s.registerResources()
	logger.Debug("mcp server ready", "run_coach", pipeline != nil)

	return s, nil
}

// Serve runs over stdio until ctx is done or the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
