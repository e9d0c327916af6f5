// ABOUTME: Tests for the markdown run files and their frontmatter helpers.
// ABOUTME: Checks file layout, body sections and tolerance of hand-edited files.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownStoreFileLayout(t *testing.T) {
	store := setupTestMarkdownStore(t)
	r := newTestRun(time.Date(2025, 2, 9, 14, 30, 0, 0, time.UTC))
	require.NoError(t, store.CreateRun(r))

	path := filepath.Join(store.dataDir, "runs", "2025", "02", "2025-02-09-sample-"+r.ShortID()+".md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "---\nid: "+r.ID.String()+"\n"))
	assert.Contains(t, content, "provider: openai\n")
	assert.Contains(t, content, "2025-02-09T14:30:00Z")
	assert.Contains(t, content, "<!-- coach:analysis -->\n## Health Analysis\n\nReadiness is high.")
	assert.Contains(t, content, "## Workout Plan\n\n# Week 1")
}

func TestMarkdownStoreSkipsTempFiles(t *testing.T) {
	store := setupTestMarkdownStore(t)
	r := newTestRun(time.Now())
	require.NoError(t, store.CreateRun(r))

	dir := filepath.Dir(store.runFilePath(r))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partial.md.tmp-1.md"), []byte("garbage"), 0600))

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestMarkdownStoreRejectsFileWithoutFrontmatter(t *testing.T) {
	store := setupTestMarkdownStore(t)
	dir := filepath.Join(store.dataDir, "runs", "2025", "01")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("just notes"), 0600))

	_, err := store.ListRuns(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no frontmatter")
}

func TestRunBodyRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain", "one line"},
		{"trailing newline", "ends with newline\n"},
		{"headings", "## Heading\n\nbody\n\n### Sub"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(time.Now())
			r.Summary = tt.text
			r.Analysis = tt.text
			r.NutritionPlan = tt.text

			got := newTestRun(time.Now())
			parseRunBody(renderRunBody(r), got)

			assert.Equal(t, tt.text, got.Summary)
			assert.Equal(t, tt.text, got.Analysis)
			assert.Equal(t, r.WorkoutPlan, got.WorkoutPlan)
			assert.Equal(t, tt.text, got.NutritionPlan)
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantYAML string
		wantBody string
	}{
		{"standard", "---\nid: x\n---\nbody\n", "id: x", "body\n"},
		{"no body", "---\nid: x\n---", "id: x", ""},
		{"no frontmatter", "# title\n", "", "# title\n"},
		{"unterminated", "---\nid: x\n", "", "---\nid: x\n"},
		{"bom", "\ufeff---\nid: y\n---\n", "id: y", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYAML, gotBody := parseFrontmatter(tt.doc)
			assert.Equal(t, tt.wantYAML, gotYAML)
			assert.Equal(t, tt.wantBody, gotBody)
		})
	}
}

func TestRenderFrontmatter(t *testing.T) {
	out, err := renderFrontmatter(map[string]string{"id": "abc"}, "\nbody\n")
	require.NoError(t, err)
	assert.Equal(t, "---\nid: abc\n---\n\nbody\n", out)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "strength-training", slugify("Strength Training"))
	assert.Equal(t, "mcp", slugify("mcp"))
	assert.Equal(t, "untitled", slugify("!!!"))
}

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "file.md")

	require.NoError(t, atomicWrite(path, []byte("first")))
	require.NoError(t, atomicWrite(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
