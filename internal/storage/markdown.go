// ABOUTME: File-based run log: one markdown document per run with YAML frontmatter.
// ABOUTME: Agent outputs live in marked body sections so the files read well on their own.

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/harperreed/fitcoach/internal/models"
	"gopkg.in/yaml.v3"
)

// MarkdownStore provides file-based storage for runs using markdown files.
type MarkdownStore struct {
	dataDir string
}

// Compile-time check that MarkdownStore implements Repository.
var _ Repository = (*MarkdownStore)(nil)

// NewMarkdownStore creates a new markdown-backed store rooted at dataDir.
func NewMarkdownStore(dataDir string) (*MarkdownStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &MarkdownStore{dataDir: dataDir}, nil
}

// Close releases resources. For MarkdownStore this is a no-op.
func (s *MarkdownStore) Close() error {
	return nil
}

func (s *MarkdownStore) runsDir() string {
	return filepath.Join(s.dataDir, "runs")
}

// runFilePath returns runs/YYYY/MM/YYYY-MM-DD-<source>-<id_prefix>.md.
func (s *MarkdownStore) runFilePath(r *models.Run) string {
	at := r.CreatedAt.UTC()
	return filepath.Join(s.runsDir(), at.Format("2006"), at.Format("01"),
		fmt.Sprintf("%s-%s-%s.md", at.Format("2006-01-02"), slugify(string(r.Source)), r.ID.String()[:8]))
}

type runFrontmatter struct {
	ID         string                `yaml:"id"`
	Source     string                `yaml:"source"`
	Provider   string                `yaml:"provider"`
	Model      string                `yaml:"model,omitempty"`
	SnapshotAt string                `yaml:"snapshot_at"`
	CreatedAt  string                `yaml:"created_at"`
	Artifacts  []artifactFrontmatter `yaml:"artifacts,omitempty"`
}

type artifactFrontmatter struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Bytes int64  `yaml:"bytes"`
}

type bodySection struct {
	key   string
	title string
	field func(r *models.Run) *string
}

var runSections = []bodySection{
	{"summary", "Health Summary", func(r *models.Run) *string { return &r.Summary }},
	{"analysis", "Health Analysis", func(r *models.Run) *string { return &r.Analysis }},
	{"workout_plan", "Workout Plan", func(r *models.Run) *string { return &r.WorkoutPlan }},
	{"nutrition_plan", "Nutrition Plan", func(r *models.Run) *string { return &r.NutritionPlan }},
}

var sectionMarker = regexp.MustCompile(`(?m)^<!-- coach:([a-z_]+) -->\n`)

func runToFrontmatter(r *models.Run) runFrontmatter {
	fm := runFrontmatter{
		ID:         r.ID.String(),
		Source:     string(r.Source),
		Provider:   r.Provider,
		Model:      r.Model,
		SnapshotAt: formatTime(r.SnapshotAt),
		CreatedAt:  formatTime(r.CreatedAt),
	}
	for _, a := range r.Artifacts {
		fm.Artifacts = append(fm.Artifacts, artifactFrontmatter(a))
	}
	return fm
}

func runFromFrontmatter(fm *runFrontmatter) (*models.Run, error) {
	id, err := uuid.Parse(fm.ID)
	if err != nil {
		return nil, fmt.Errorf("parse run ID %q: %w", fm.ID, err)
	}
	snapshotAt, err := parseTime(fm.SnapshotAt)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot_at %q: %w", fm.SnapshotAt, err)
	}
	createdAt, err := parseTime(fm.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", fm.CreatedAt, err)
	}

	r := &models.Run{
		ID:         id,
		Source:     models.RunSource(fm.Source),
		Provider:   fm.Provider,
		Model:      fm.Model,
		SnapshotAt: snapshotAt,
		CreatedAt:  createdAt,
	}
	for _, a := range fm.Artifacts {
		r.Artifacts = append(r.Artifacts, models.Artifact(a))
	}
	return r, nil
}

func renderRunBody(r *models.Run) string {
	var b strings.Builder
	for _, sec := range runSections {
		fmt.Fprintf(&b, "\n<!-- coach:%s -->\n## %s\n\n%s\n\n", sec.key, sec.title, *sec.field(r))
	}
	return b.String()
}

func parseRunBody(body string, r *models.Run) {
	fields := make(map[string]*string, len(runSections))
	for _, sec := range runSections {
		fields[sec.key] = sec.field(r)
	}

	locs := sectionMarker.FindAllStringSubmatchIndex(body, -1)
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		seg := body[loc[1]:end]
		if strings.HasPrefix(seg, "## ") {
			if nl := strings.IndexByte(seg, '\n'); nl >= 0 {
				seg = seg[nl+1:]
			}
		}
		seg = strings.TrimPrefix(seg, "\n")
		if i+1 < len(locs) {
			seg = strings.TrimSuffix(seg, "\n")
		}
		seg = strings.TrimSuffix(seg, "\n\n")

		if dst, ok := fields[body[loc[2]:loc[3]]]; ok {
			*dst = seg
		}
	}
}

func readRunFile(path string) (*models.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	yamlStr, body := parseFrontmatter(string(data))
	if yamlStr == "" {
		return nil, fmt.Errorf("no frontmatter in %s", path)
	}

	var fm runFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}

	r, err := runFromFrontmatter(&fm)
	if err != nil {
		return nil, err
	}
	parseRunBody(body, r)
	return r, nil
}

func (s *MarkdownStore) writeRunFile(r *models.Run) error {
	fm := runToFrontmatter(r)
	content, err := renderFrontmatter(&fm, renderRunBody(r))
	if err != nil {
		return fmt.Errorf("render run file: %w", err)
	}
	return atomicWrite(s.runFilePath(r), []byte(content))
}

// walkRunFiles walks all run markdown files and calls fn for each.
func (s *MarkdownStore) walkRunFiles(fn func(path string, r *models.Run) error) error {
	runsDir := s.runsDir()
	if _, err := os.Stat(runsDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(runsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") || strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		r, err := readRunFile(path)
		if err != nil {
			return fmt.Errorf("read run file %s: %w", path, err)
		}

		return fn(path, r)
	})
}

// findRunFile finds the file path for a run by ID or prefix.
func (s *MarkdownStore) findRunFile(idOrPrefix string) (string, *models.Run, error) {
	full := isFullUUID(idOrPrefix)

	var foundPath string
	var foundRun *models.Run
	matchCount := 0

	err := s.walkRunFiles(func(path string, r *models.Run) error {
		idStr := r.ID.String()
		if full {
			if idStr == idOrPrefix {
				foundPath = path
				foundRun = r
				matchCount = 1
				return filepath.SkipAll
			}
		} else if strings.HasPrefix(idStr, idOrPrefix) {
			foundPath = path
			foundRun = r
			matchCount++
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	if matchCount == 0 {
		return "", nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if matchCount > 1 {
		return "", nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return foundPath, foundRun, nil
}

// CreateRun stores a new run as a markdown file.
func (s *MarkdownStore) CreateRun(r *models.Run) error {
	if _, _, err := s.findRunFile(r.ID.String()); err == nil {
		return fmt.Errorf("create run: %s already exists", r.ID)
	}
	return s.writeRunFile(r)
}

// GetRun retrieves a run by ID or ID prefix.
func (s *MarkdownStore) GetRun(idOrPrefix string) (*models.Run, error) {
	_, r, err := s.findRunFile(idOrPrefix)
	return r, err
}

// ListRuns retrieves runs sorted by CreatedAt descending (most recent first).
func (s *MarkdownStore) ListRuns(limit int) ([]*models.Run, error) {
	var runs []*models.Run

	err := s.walkRunFiles(func(path string, r *models.Run) error {
		runs = append(runs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	sortRuns(runs)

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// DeleteRun removes a run file by ID or prefix.
func (s *MarkdownStore) DeleteRun(idOrPrefix string) error {
	path, _, err := s.findRunFile(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete run file: %w", err)
	}
	return nil
}

// GetAllData retrieves all data for export.
func (s *MarkdownStore) GetAllData() (*ExportData, error) {
	runs, err := s.ListRuns(0)
	if err != nil {
		return nil, err
	}
	return NewExportData(runs), nil
}

// ImportData imports data from an export format.
func (s *MarkdownStore) ImportData(data *ExportData) error {
	for _, r := range data.Runs {
		if err := s.CreateRun(r); err != nil {
			return fmt.Errorf("import run: %w", err)
		}
	}
	return nil
}

// sortRuns orders runs newest first, breaking ties by ID.
func sortRuns(runs []*models.Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID.String() < runs[j].ID.String()
	})
}
