// ABOUTME: MCP resource implementations for the fitness coach.
// ABOUTME: Provides coach://sample, coach://runs/recent, and coach://runs/latest resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriSample     = "coach://sample"
	uriRunsRecent = "coach://runs/recent"
	uriRunsLatest = "coach://runs/latest"

	recentRunLimit = 10
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriSample,
		Name:        "Sample Health Summary",
		Description: "Comprehensive summary of the built-in sample snapshot",
		MIMEType:    "text/plain",
	}, s.handleSampleResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriRunsRecent,
		Name:        "Recent Coaching Runs",
		Description: "Last 10 coaching runs",
		MIMEType:    "application/json",
	}, s.handleRecentRunsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriRunsLatest,
		Name:        "Latest Coaching Plans",
		Description: "Analysis, workout plan and nutrition plan from the most recent run",
		MIMEType:    "text/markdown",
	}, s.handleLatestRunResource)
}

// Resource handlers

func (s *Server) handleSampleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uriSample,
			MIMEType: "text/plain",
			Text:     summary.Render(models.SampleSnapshot(s.now())),
		}},
	}, nil
}

func (s *Server) handleRecentRunsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	runs, err := s.repo.ListRuns(recentRunLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	result := map[string]any{
		"runs":  listItems(runs),
		"count": len(runs),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uriRunsRecent,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleLatestRunResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	runs, err := s.repo.ListRuns(1)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	text := "No runs recorded yet.\n"
	if len(runs) > 0 {
		text = storage.RunMarkdown(runs[0])
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uriRunsLatest,
			MIMEType: "text/markdown",
			Text:     text,
		}},
	}, nil
}
