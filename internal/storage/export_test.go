// ABOUTME: Tests for exporting and importing the run log.
// ABOUTME: Covers JSON, YAML and Markdown output and re-import into a fresh store.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func seedRuns(t *testing.T, repo Repository, n int) []*models.Run {
	t.Helper()
	now := time.Now()
	var runs []*models.Run
	for i := 0; i < n; i++ {
		r := newTestRun(now.Add(time.Duration(i) * time.Minute))
		require.NoError(t, repo.CreateRun(r))
		runs = append(runs, r)
	}
	return runs
}

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	runs := seedRuns(t, db, 2)

	data, err := ExportJSON(db)
	require.NoError(t, err)

	var exported ExportData
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, ExportVersion, exported.Version)
	assert.Equal(t, "coach", exported.Tool)
	require.Len(t, exported.Runs, 2)
	assert.Equal(t, runs[1].ID, exported.Runs[0].ID)
}

func TestExportJSONEmpty(t *testing.T) {
	data, err := ExportJSON(setupTestDB(t))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"runs": []`)
}

func TestExportYAML(t *testing.T) {
	store := setupTestMarkdownStore(t)
	runs := seedRuns(t, store, 1)

	data, err := ExportYAML(store)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "coach", parsed["tool"])
	assert.Contains(t, string(data), "id: "+runs[0].ID.String())
	assert.Contains(t, string(data), "workout_plan: |-")
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	runs := seedRuns(t, db, 2)

	md, err := ExportMarkdown(db, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Coach Export - "))
	assert.Contains(t, md, "| Date | ID | Source | Generator | Plans |")
	assert.Contains(t, md, "| "+runs[0].ShortID()+" | sample | openai/gpt-4o-mini | 2 |")
	assert.Contains(t, md, "## Run "+runs[1].ShortID())
	assert.Contains(t, md, "### Nutrition Plan\n\n# Nutrition\n\nDrink 2.5 L water.\n")
}

func TestExportMarkdownWithSince(t *testing.T) {
	db := setupTestDB(t)
	runs := seedRuns(t, db, 3)

	since := runs[1].CreatedAt
	md, err := ExportMarkdown(db, &since)
	require.NoError(t, err)

	assert.NotContains(t, md, "## Run "+runs[0].ShortID())
	assert.Contains(t, md, "## Run "+runs[1].ShortID())
	assert.Contains(t, md, "## Run "+runs[2].ShortID())
}

func TestExportMarkdownEmpty(t *testing.T) {
	md, err := ExportMarkdown(setupTestMarkdownStore(t), nil)
	require.NoError(t, err)
	assert.Contains(t, md, "No runs recorded.")
}

func TestImportJSON(t *testing.T) {
	src := setupTestDB(t)
	runs := seedRuns(t, src, 2)

	data, err := ExportJSON(src)
	require.NoError(t, err)

	dst := setupTestMarkdownStore(t)
	require.NoError(t, ImportJSON(dst, data))

	got, err := dst.GetRun(runs[0].ID.String())
	require.NoError(t, err)
	assertRunEqual(t, got, runs[0])
}

func TestImportYAML(t *testing.T) {
	src := setupTestMarkdownStore(t)
	runs := seedRuns(t, src, 1)

	data, err := ExportYAML(src)
	require.NoError(t, err)

	dst := setupTestDB(t)
	require.NoError(t, ImportYAML(dst, data))

	got, err := dst.GetRun(runs[0].ShortID())
	require.NoError(t, err)
	assertRunEqual(t, got, runs[0])
}

func TestImportInvalid(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, ImportJSON(db, []byte("{not json")))
	assert.Error(t, ImportYAML(db, []byte("runs: [:")))
}
