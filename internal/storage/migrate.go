// ABOUTME: Data migration between run log backends.
// ABOUTME: Copies every run, with its artifact records, from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Runs      int
	Artifacts int
}

// MigrateData copies all runs from src to dst, oldest first so listing order survives.
// The destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	runs, err := src.ListRuns(0)
	if err != nil {
		return nil, fmt.Errorf("list source runs: %w", err)
	}

	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		if err := dst.CreateRun(r); err != nil {
			return nil, fmt.Errorf("create run %s: %w", r.ID, err)
		}
		summary.Runs++
		summary.Artifacts += len(r.Artifacts)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
