// ABOUTME: Tests for migrating runs between backends.
// ABOUTME: Verifies counts, preserved fields and listing order after migration.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateDataSQLiteToMarkdown(t *testing.T) {
	src := setupTestDB(t)
	runs := seedRuns(t, src, 3)
	dst := setupTestMarkdownStore(t)

	summary, err := MigrateData(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Runs)
	assert.Equal(t, 6, summary.Artifacts)

	listed, err := dst.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, runs[2].ID, listed[0].ID)
	assertRunEqual(t, listed[2], runs[0])
}

func TestMigrateDataMarkdownToSQLite(t *testing.T) {
	src := setupTestMarkdownStore(t)
	runs := seedRuns(t, src, 2)
	dst := setupTestDB(t)

	summary, err := MigrateData(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Runs)

	got, err := dst.GetRun(runs[1].ID.String())
	require.NoError(t, err)
	assertRunEqual(t, got, runs[1])
}

func TestMigrateDataEmptySource(t *testing.T) {
	summary, err := MigrateData(setupTestDB(t), setupTestMarkdownStore(t))
	require.NoError(t, err)
	assert.Equal(t, &MigrateSummary{}, summary)
}

func TestMigrateDataDuplicateFails(t *testing.T) {
	src := setupTestDB(t)
	seedRuns(t, src, 1)
	dst := setupTestDB(t)

	_, err := MigrateData(src, dst)
	require.NoError(t, err)
	_, err = MigrateData(src, dst)
	assert.Error(t, err)
}

func TestIsDirNonEmpty(t *testing.T) {
	emptyDir := t.TempDir()

	nonEmpty, err := IsDirNonEmpty(emptyDir)
	if err != nil {
		t.Fatalf("IsDirNonEmpty failed: %v", err)
	}
	if nonEmpty {
		t.Error("Expected empty directory to return false")
	}

	if err := os.WriteFile(filepath.Join(emptyDir, "test.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	nonEmpty, err = IsDirNonEmpty(emptyDir)
	if err != nil {
		t.Fatalf("IsDirNonEmpty failed: %v", err)
	}
	if !nonEmpty {
		t.Error("Expected non-empty directory to return true")
	}

	nonEmpty, err = IsDirNonEmpty("/nonexistent/path")
	if err != nil {
		t.Fatalf("IsDirNonEmpty for nonexistent should not error: %v", err)
	}
	if nonEmpty {
		t.Error("Expected non-existent directory to return false")
	}
}
