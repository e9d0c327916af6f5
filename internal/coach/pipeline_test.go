// ABOUTME: Tests for the coaching pipeline using scripted generators and an in-memory writer.
// ABOUTME: Verifies ordering, context passing, artifact writes and fail-fast errors.
package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitcoach/internal/llm"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGenerator struct {
	prompts []llm.Prompt
	failOn  int // 1-based call number that fails; 0 never fails
}

func (g *scriptedGenerator) Name() string { return "scripted/v1" }

func (g *scriptedGenerator) Generate(ctx context.Context, p llm.Prompt) (string, error) {
	g.prompts = append(g.prompts, p)
	n := len(g.prompts)
	if n == g.failOn {
		return "", errors.New("quota exceeded")
	}
	return fmt.Sprintf("OUTPUT-%d", n), nil
}

type memWriter struct {
	files map[string]string
	fail  string
}

func (w *memWriter) WriteArtifact(name, content string) (models.Artifact, error) {
	if name == w.fail {
		return models.Artifact{}, errors.New("disk full")
	}
	if w.files == nil {
		w.files = map[string]string{}
	}
	w.files[name] = content
	return models.Artifact{Name: name, Path: "/plans/" + name, Bytes: int64(len(content))}, nil
}

type recordingObserver struct {
	events []string
}

func (o *recordingObserver) StageStarted(t Task) {
	o.events = append(o.events, "start:"+t.Name)
}

func (o *recordingObserver) StageFinished(t Task, output string, elapsed time.Duration) {
	o.events = append(o.events, "done:"+t.Name)
}

var snapAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func TestPipelineRunsTasksInOrder(t *testing.T) {
	gen := &scriptedGenerator{}
	w := &memWriter{}
	obs := &recordingObserver{}
	p := &Pipeline{Generator: gen, Writer: w, Observer: obs}

	s := models.SampleSnapshot(snapAt)
	res, err := p.Run(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, gen.prompts, 3)
	assert.Equal(t, ResearchAssistant.SystemPrompt(), gen.prompts[0].System)
	assert.Equal(t, FitnessWriter.SystemPrompt(), gen.prompts[1].System)
	assert.Equal(t, NutritionWriter.SystemPrompt(), gen.prompts[2].System)

	assert.Contains(t, gen.prompts[0].User, summary.Render(s))
	assert.Equal(t, summary.Render(s), res.Summary)

	assert.Equal(t, []string{
		"start:analysis", "done:analysis",
		"start:workout_plan", "done:workout_plan",
		"start:nutrition_plan", "done:nutrition_plan",
	}, obs.events)

	assert.Equal(t, map[string]string{
		TaskAnalysis:      "OUTPUT-1",
		TaskWorkoutPlan:   "OUTPUT-2",
		TaskNutritionPlan: "OUTPUT-3",
	}, res.Outputs)
}

func TestPipelinePassesAnalysisToBothWriters(t *testing.T) {
	gen := &scriptedGenerator{}
	p := &Pipeline{Generator: gen}

	_, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
	require.NoError(t, err)

	workout, nutrition := gen.prompts[1].User, gen.prompts[2].User
	assert.Contains(t, workout, "CONTEXT FROM ANALYSIS:\nOUTPUT-1")
	assert.Contains(t, nutrition, "CONTEXT FROM ANALYSIS:\nOUTPUT-1")
	assert.NotContains(t, nutrition, "OUTPUT-2", "nutrition writer must not see the workout plan")
	assert.NotContains(t, gen.prompts[0].User, "CONTEXT FROM")
}

func TestPipelineWritesArtifacts(t *testing.T) {
	w := &memWriter{}
	p := &Pipeline{Generator: &scriptedGenerator{}, Writer: w}

	res, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		WorkoutPlanFile:   "OUTPUT-2",
		NutritionPlanFile: "OUTPUT-3",
	}, w.files)
	require.Len(t, res.Artifacts, 2)
	assert.Equal(t, WorkoutPlanFile, res.Artifacts[0].Name)
	assert.Equal(t, int64(len("OUTPUT-2")), res.Artifacts[0].Bytes)
	assert.Equal(t, NutritionPlanFile, res.Artifacts[1].Name)
}

func TestPipelineFailsFast(t *testing.T) {
	tests := []struct {
		name     string
		failOn   int
		wantTask string
		calls    int
	}{
		{"analysis", 1, TaskAnalysis, 1},
		{"workout", 2, TaskWorkoutPlan, 2},
		{"nutrition", 3, TaskNutritionPlan, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &scriptedGenerator{failOn: tt.failOn}
			w := &memWriter{}
			p := &Pipeline{Generator: gen, Writer: w}

			res, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
			require.Error(t, err)

			var stageErr *StageError
			require.True(t, errors.As(err, &stageErr))
			assert.Equal(t, tt.wantTask, stageErr.Task)
			assert.Contains(t, err.Error(), "quota exceeded")
			assert.Len(t, gen.prompts, tt.calls, "no retries and no later stages")
			assert.NotContains(t, res.Outputs, tt.wantTask)
		})
	}
}

func TestPipelineArtifactFailure(t *testing.T) {
	gen := &scriptedGenerator{}
	p := &Pipeline{Generator: gen, Writer: &memWriter{fail: WorkoutPlanFile}}

	_, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, TaskWorkoutPlan, stageErr.Task)
	assert.Contains(t, err.Error(), "write personalized_workout_plan.md: disk full")
	assert.Len(t, gen.prompts, 2)
}

func TestPipelineMissingDependency(t *testing.T) {
	p := &Pipeline{Generator: &scriptedGenerator{}}
	tasks := Tasks("summary")[1:]

	_, err := p.RunTasks(context.Background(), "summary", tasks)
	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, TaskWorkoutPlan, stageErr.Task)
}

func TestPipelineWithOfflineGenerator(t *testing.T) {
	p := &Pipeline{Generator: llm.NewOffline()}

	a, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
	require.NoError(t, err)
	b, err := p.Run(context.Background(), models.SampleSnapshot(snapAt))
	require.NoError(t, err)

	assert.Equal(t, a.Outputs, b.Outputs)
	assert.True(t, strings.HasPrefix(a.Outputs[TaskWorkoutPlan], "## Offline draft"))
}

func TestResultRun(t *testing.T) {
	res := &Result{
		Generator: "openai/gpt-4o-mini",
		Summary:   "summary text",
		Outputs: map[string]string{
			TaskAnalysis:      "a",
			TaskWorkoutPlan:   "w",
			TaskNutritionPlan: "n",
		},
		Artifacts: []models.Artifact{{Name: WorkoutPlanFile, Bytes: 1}},
	}

	run := res.Run(models.SourceSample, snapAt)
	assert.Equal(t, "openai", run.Provider)
	assert.Equal(t, "gpt-4o-mini", run.Model)
	assert.Equal(t, models.SourceSample, run.Source)
	assert.True(t, run.SnapshotAt.Equal(snapAt))
	assert.Equal(t, "a", run.Analysis)
	assert.Equal(t, "w", run.WorkoutPlan)
	assert.Equal(t, "n", run.NutritionPlan)
	assert.Len(t, run.Artifacts, 1)

	offline := (&Result{Generator: "offline"}).Run(models.SourceAPI, snapAt)
	assert.Equal(t, "offline", offline.Provider)
	assert.Empty(t, offline.Model)
}

func TestTasksShape(t *testing.T) {
	tasks := Tasks("SUMMARY")
	require.Len(t, tasks, 3)
	assert.Equal(t, TaskAnalysis, tasks[0].Name)
	assert.Empty(t, tasks[0].Artifact)
	assert.Contains(t, tasks[0].Description, "\n\nSUMMARY\n")
	for _, task := range tasks[1:] {
		assert.Equal(t, []string{TaskAnalysis}, task.DependsOn)
		assert.NotEmpty(t, task.Artifact)
	}
	assert.Len(t, Agents(), 3)
}
