// ABOUTME: MCP tool implementations for the fitness coach.
// ABOUTME: Renders summaries from raw tokens, runs the crew and manages the run log.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/fitcoach/internal/intake"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sample_snapshot",
		Description: "Return the built-in sample health snapshot and its text summary",
	}, s.handleSampleSnapshot)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_summary",
		Description: "Build a health snapshot from raw text values and render the comprehensive summary",
	}, s.handleRenderSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_runs",
		Description: "List recent coaching runs, newest first",
	}, s.handleListRuns)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_run",
		Description: "Get a coaching run with its analysis and plans",
	}, s.handleGetRun)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_run",
		Description: "Delete a coaching run by ID or ID prefix",
	}, s.handleDeleteRun)

	if s.pipeline != nil {
		mcp.AddTool(s.mcpServer, &mcp.Tool{
			Name:        "run_coach",
			Description: "Run the analysis, workout plan and nutrition plan agents on a health snapshot",
		}, s.handleRunCoach)
	}
}

// Tool input/output types

type sampleInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: summary (default) or json"`
}

type snapshotInput struct {
	Raw    map[string]string            `json:"raw,omitempty" jsonschema:"Flat map of field key to raw text value, e.g. age=28 or resting_hr=skip"`
	Groups map[string]map[string]string `json:"groups,omitempty" jsonschema:"Raw values nested by metric group, e.g. profile.age=28"`
}

type summaryOutput struct {
	Summary string   `json:"summary"`
	Invalid []string `json:"invalid,omitempty"`
	Unknown []string `json:"unknown,omitempty"`
}

type listRunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type runIDInput struct {
	ID string `json:"id" jsonschema:"Run ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type runCoachInput struct {
	Sample bool                         `json:"sample,omitempty" jsonschema:"Use the built-in sample snapshot instead of raw values"`
	Raw    map[string]string            `json:"raw,omitempty" jsonschema:"Flat map of field key to raw text value"`
	Groups map[string]map[string]string `json:"groups,omitempty" jsonschema:"Raw values nested by metric group"`
}

type runCoachOutput struct {
	ID            string            `json:"id"`
	Generator     string            `json:"generator"`
	Analysis      string            `json:"analysis"`
	WorkoutPlan   string            `json:"workout_plan"`
	NutritionPlan string            `json:"nutrition_plan"`
	Artifacts     []models.Artifact `json:"artifacts,omitempty"`
	Message       string            `json:"message"`
}

type runListItem struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Source    models.RunSource `json:"source"`
	Generator string           `json:"generator"`
	Plans     []string         `json:"plans,omitempty"`
}

// snapshot builds a snapshot from raw tokens, collecting the keys that failed to parse.
func (s *Server) snapshot(in snapshotInput) (*models.Snapshot, summaryOutput) {
	raw := intake.Grouped(in.Groups)
	for k, v := range in.Raw {
		raw[k] = v
	}

	var out summaryOutput
	b := &intake.Builder{OnInvalid: func(key, value string) {
		out.Invalid = append(out.Invalid, fmt.Sprintf("%s=%s", key, value))
	}}
	snap := b.Build(raw, s.now())

	out.Unknown = intake.Unknown(raw)
	sort.Strings(out.Unknown)
	out.Summary = summary.Render(snap)
	return snap, out
}

// Tool handlers

func (s *Server) handleSampleSnapshot(ctx context.Context, req *mcp.CallToolRequest, input sampleInput) (*mcp.CallToolResult, any, error) {
	snap := models.SampleSnapshot(s.now())

	switch input.Format {
	case "", "summary":
		return nil, summaryOutput{Summary: summary.Render(snap)}, nil
	case "json":
		return nil, snap, nil
	default:
		return nil, nil, fmt.Errorf("unknown format: %s", input.Format)
	}
}

func (s *Server) handleRenderSummary(ctx context.Context, req *mcp.CallToolRequest, input snapshotInput) (*mcp.CallToolResult, summaryOutput, error) {
	_, out := s.snapshot(input)
	return nil, out, nil
}

func (s *Server) handleListRuns(ctx context.Context, req *mcp.CallToolRequest, input listRunsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	runs, err := s.repo.ListRuns(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		return nil, map[string]any{"message": "No runs found."}, nil
	}

	return nil, listItems(runs), nil
}

func listItems(runs []*models.Run) []runListItem {
	items := make([]runListItem, 0, len(runs))
	for _, r := range runs {
		item := runListItem{
			ID:        r.ID.String(),
			CreatedAt: r.CreatedAt,
			Source:    r.Source,
			Generator: r.Provider,
		}
		if r.Model != "" {
			item.Generator += "/" + r.Model
		}
		for _, a := range r.Artifacts {
			item.Plans = append(item.Plans, a.Name)
		}
		items = append(items, item)
	}
	return items
}

func (s *Server) handleGetRun(ctx context.Context, req *mcp.CallToolRequest, input runIDInput) (*mcp.CallToolResult, any, error) {
	r, err := s.repo.GetRun(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("run not found: %s", input.ID)
	}

	return nil, r, nil
}

func (s *Server) handleDeleteRun(ctx context.Context, req *mcp.CallToolRequest, input runIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteRun(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete run: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted run: %s", input.ID),
	}, nil
}

func (s *Server) handleRunCoach(ctx context.Context, req *mcp.CallToolRequest, input runCoachInput) (*mcp.CallToolResult, runCoachOutput, error) {
	var snap *models.Snapshot
	if input.Sample {
		snap = models.SampleSnapshot(s.now())
	} else {
		if len(input.Raw) == 0 && len(input.Groups) == 0 {
			return nil, runCoachOutput{}, fmt.Errorf("provide raw or groups values, or set sample")
		}
		snap, _ = s.snapshot(snapshotInput{Raw: input.Raw, Groups: input.Groups})
	}

	res, err := s.pipeline.Run(ctx, snap)
	if err != nil {
		return nil, runCoachOutput{}, fmt.Errorf("coaching run failed: %w", err)
	}

	run := res.Run(models.SourceMCP, snap.Timestamp)
	if err := s.repo.CreateRun(run); err != nil {
		return nil, runCoachOutput{}, fmt.Errorf("failed to record run: %w", err)
	}
	logger.Info("coaching run recorded", "id", run.ShortID(), "source", run.Source, "generator", res.Generator)

	return nil, runCoachOutput{
		ID:            run.ID.String(),
		Generator:     res.Generator,
		Analysis:      run.Analysis,
		WorkoutPlan:   run.WorkoutPlan,
		NutritionPlan: run.NutritionPlan,
		Artifacts:     run.Artifacts,
		Message:       fmt.Sprintf("Recorded run %s with %d plan file(s)", run.ShortID(), len(run.Artifacts)),
	}, nil
}
