// ABOUTME: Export and import of the run log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any Repository.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the version written into every export.
const ExportVersion = "1.0"

// ExportData represents the full export format for the run log.
type ExportData struct {
	Version    string        `json:"version" yaml:"version"`
	ExportedAt time.Time     `json:"exported_at" yaml:"exported_at"`
	Tool       string        `json:"tool" yaml:"tool"`
	Runs       []*models.Run `json:"runs" yaml:"runs"`
}

// NewExportData wraps runs in a versioned export envelope.
func NewExportData(runs []*models.Run) *ExportData {
	if runs == nil {
		runs = []*models.Run{}
	}
	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "coach",
		Runs:       runs,
	}
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	runs, err := d.ListRuns(0)
	if err != nil {
		return nil, err
	}
	return NewExportData(runs), nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, r := range data.Runs {
		if err := d.CreateRun(r); err != nil {
			return fmt.Errorf("import run: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all runs as indented JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all runs as YAML with compact run headers.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string    `yaml:"version"`
		ExportedAt string    `yaml:"exported_at"`
		Tool       string    `yaml:"tool"`
		Runs       []yamlRun `yaml:"runs"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Runs:       make([]yamlRun, 0, len(data.Runs)),
	}

	for _, r := range data.Runs {
		yr := yamlRun{
			ID:            r.ID.String(),
			Source:        string(r.Source),
			Provider:      r.Provider,
			Model:         r.Model,
			SnapshotAt:    r.SnapshotAt.Format(time.RFC3339),
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
			Summary:       r.Summary,
			Analysis:      r.Analysis,
			WorkoutPlan:   r.WorkoutPlan,
			NutritionPlan: r.NutritionPlan,
			Artifacts:     r.Artifacts,
		}
		yamlData.Runs = append(yamlData.Runs, yr)
	}

	return yaml.Marshal(yamlData)
}

type yamlRun struct {
	ID            string            `yaml:"id"`
	Source        string            `yaml:"source"`
	Provider      string            `yaml:"provider"`
	Model         string            `yaml:"model,omitempty"`
	SnapshotAt    string            `yaml:"snapshot_at"`
	CreatedAt     string            `yaml:"created_at"`
	Summary       string            `yaml:"summary"`
	Analysis      string            `yaml:"analysis"`
	WorkoutPlan   string            `yaml:"workout_plan"`
	NutritionPlan string            `yaml:"nutrition_plan"`
	Artifacts     []models.Artifact `yaml:"artifacts,omitempty"`
}

// ExportMarkdown exports runs as a Markdown report. A non-nil since keeps runs created at or after it.
func ExportMarkdown(repo Repository, since *time.Time) (string, error) {
	runs, err := repo.ListRuns(0)
	if err != nil {
		return "", err
	}

	if since != nil {
		var filtered []*models.Run
		for _, r := range runs {
			if !r.CreatedAt.Before(*since) {
				filtered = append(filtered, r)
			}
		}
		runs = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Coach Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(runs) == 0 {
		sb.WriteString("No runs recorded.\n")
		return sb.String(), nil
	}

	sb.WriteString("| Date | ID | Source | Generator | Plans |\n")
	sb.WriteString("|------|----|--------|-----------|-------|\n")
	for _, r := range runs {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.ShortID(), r.Source, generatorLabel(r), len(r.Artifacts)))
	}

	for _, r := range runs {
		sb.WriteString("\n")
		sb.WriteString(RunMarkdown(r))
	}

	return sb.String(), nil
}

// RunMarkdown renders one run's agent outputs as a Markdown section.
func RunMarkdown(r *models.Run) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Run %s (%s)\n\n", r.ShortID(), r.CreatedAt.Format("2006-01-02 15:04")))
	sb.WriteString("### Health Analysis\n\n")
	sb.WriteString(strings.TrimSpace(r.Analysis))
	sb.WriteString("\n\n### Workout Plan\n\n")
	sb.WriteString(strings.TrimSpace(r.WorkoutPlan))
	sb.WriteString("\n\n### Nutrition Plan\n\n")
	sb.WriteString(strings.TrimSpace(r.NutritionPlan))
	sb.WriteString("\n")
	return sb.String()
}

func generatorLabel(r *models.Run) string {
	if r.Model == "" {
		return r.Provider
	}
	return r.Provider + "/" + r.Model
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(repo Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return repo.ImportData(&exportData)
}

// ImportYAML imports data from YAML bytes produced by ExportYAML.
func ImportYAML(repo Repository, data []byte) error {
	var exportData ExportData
	if err := yaml.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal YAML: %w", err)
	}
	return repo.ImportData(&exportData)
}
