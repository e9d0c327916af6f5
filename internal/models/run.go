// ABOUTME: Run model recording one pass of the coaching crew.
// ABOUTME: Holds the rendered summary, every agent output and the plan artifacts.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RunSource says where the snapshot of a run came from.
type RunSource string

const (
	SourceSample      RunSource = "sample"
	SourceInteractive RunSource = "interactive"
	SourceFile        RunSource = "file"
	SourceAPI         RunSource = "api"
	SourceMCP         RunSource = "mcp"
)

// Artifact is a plan file written by a run.
type Artifact struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// Run is one completed analysis + workout plan + nutrition plan pass.
type Run struct {
	ID            uuid.UUID  `json:"id" yaml:"id"`
	CreatedAt     time.Time  `json:"created_at" yaml:"created_at"`
	SnapshotAt    time.Time  `json:"snapshot_at" yaml:"snapshot_at"`
	Source        RunSource  `json:"source" yaml:"source"`
	Provider      string     `json:"provider" yaml:"provider"`
	Model         string     `json:"model,omitempty" yaml:"model,omitempty"`
	Summary       string     `json:"summary" yaml:"summary"`
	Analysis      string     `json:"analysis" yaml:"analysis"`
	WorkoutPlan   string     `json:"workout_plan" yaml:"workout_plan"`
	NutritionPlan string     `json:"nutrition_plan" yaml:"nutrition_plan"`
	Artifacts     []Artifact `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// NewRun creates a Run with a generated UUID and current timestamp.
func NewRun(source RunSource, snapshotAt time.Time) *Run {
	return &Run{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		SnapshotAt: snapshotAt,
		Source:     source,
	}
}

// WithGenerator records which provider and model produced the run.
func (r *Run) WithGenerator(provider, model string) *Run {
	r.Provider = provider
	r.Model = model
	return r
}

// ShortID returns the 8-character ID prefix shown in listings.
func (r *Run) ShortID() string {
	return r.ID.String()[:8]
}
