// ABOUTME: Sequential, fail-fast execution of the coaching tasks against a generator.
// ABOUTME: Plan outputs are handed to an ArtifactWriter; the first failure stops the run.
package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitcoach/internal/llm"
	"github.com/harperreed/fitcoach/internal/logger"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/summary"
)

// ArtifactWriter persists a task output under a file name.
type ArtifactWriter interface {
	WriteArtifact(name, content string) (models.Artifact, error)
}

// Observer is told about stage progress.
type Observer interface {
	StageStarted(t Task)
	StageFinished(t Task, output string, elapsed time.Duration)
}

// StageError reports which task stopped the pipeline.
type StageError struct {
	Task string
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("task %s: %v", e.Task, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Result holds everything one pipeline run produced.
type Result struct {
	Generator string
	Summary   string
	Outputs   map[string]string
	Artifacts []models.Artifact
}

// Pipeline runs the crew. Writer and Observer are optional.
type Pipeline struct {
	Generator llm.Generator
	Writer    ArtifactWriter
	Observer  Observer
}

// Run renders the snapshot, then executes every task in order.
func (p *Pipeline) Run(ctx context.Context, s *models.Snapshot) (*Result, error) {
	text := summary.Render(s)
	return p.RunTasks(ctx, text, Tasks(text))
}

// RunTasks executes tasks in order with summaryText recorded on the result.
func (p *Pipeline) RunTasks(ctx context.Context, summaryText string, tasks []Task) (*Result, error) {
	res := &Result{
		Generator: p.Generator.Name(),
		Summary:   summaryText,
		Outputs:   make(map[string]string, len(tasks)),
	}
	log := logger.With("generator", res.Generator)

	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if _, ok := res.Outputs[dep]; !ok {
				return res, &StageError{Task: t.Name, Err: fmt.Errorf("depends on %s, which has not run", dep)}
			}
		}

		if p.Observer != nil {
			p.Observer.StageStarted(t)
		}
		log.Debug("stage started", "task", t.Name, "role", t.Agent.Role)
		start := time.Now()

		out, err := p.Generator.Generate(ctx, llm.Prompt{
			System: t.Agent.SystemPrompt(),
			User:   t.UserPrompt(res.Outputs),
		})
		if err != nil {
			log.Error("stage failed", "task", t.Name, "error", err)
			return res, &StageError{Task: t.Name, Err: err}
		}
		res.Outputs[t.Name] = out
		elapsed := time.Since(start)
		log.Debug("stage finished", "task", t.Name, "chars", len(out), "elapsed", elapsed)

		if t.Artifact != "" && p.Writer != nil {
			a, err := p.Writer.WriteArtifact(t.Artifact, out)
			if err != nil {
				return res, &StageError{Task: t.Name, Err: fmt.Errorf("write %s: %w", t.Artifact, err)}
			}
			res.Artifacts = append(res.Artifacts, a)
		}

		if p.Observer != nil {
			p.Observer.StageFinished(t, out, elapsed)
		}
	}

	return res, nil
}

// Run converts the result into a run record for the given source.
func (r *Result) Run(source models.RunSource, snapshotAt time.Time) *models.Run {
	provider, model, _ := strings.Cut(r.Generator, "/")

	run := models.NewRun(source, snapshotAt).WithGenerator(provider, model)
	run.Summary = r.Summary
	run.Analysis = r.Outputs[TaskAnalysis]
	run.WorkoutPlan = r.Outputs[TaskWorkoutPlan]
	run.NutritionPlan = r.Outputs[TaskNutritionPlan]
	run.Artifacts = append([]models.Artifact(nil), r.Artifacts...)
	return run
}
