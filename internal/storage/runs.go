// ABOUTME: Run CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for runs and their artifacts.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitcoach/internal/models"
)

const runColumns = `id, source, provider, model, snapshot_at, summary, analysis, workout_plan, nutrition_plan, created_at`

// CreateRun stores a run and its artifacts in one transaction.
func (d *DB) CreateRun(r *models.Run) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID.String(),
		string(r.Source),
		r.Provider,
		nullString(r.Model),
		r.SnapshotAt.UTC().Format(time.RFC3339),
		r.Summary,
		r.Analysis,
		r.WorkoutPlan,
		r.NutritionPlan,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}

	for i, a := range r.Artifacts {
		_, err := tx.Exec(
			`INSERT INTO run_artifacts (run_id, position, name, path, bytes) VALUES (?, ?, ?, ?, ?)`,
			r.ID.String(), i, a.Name, a.Path, a.Bytes,
		)
		if err != nil {
			return fmt.Errorf("create run artifact %s: %w", a.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID or ID prefix.
func (d *DB) GetRun(idOrPrefix string) (*models.Run, error) {
	id, err := d.resolveRunID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	r, err := scanRun(d.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, err
	}

	if err := d.loadArtifacts(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListRuns retrieves runs sorted by CreatedAt descending (most recent first).
func (d *DB) ListRuns(limit int) ([]*models.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, id`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	var runs []*models.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("list runs: %w", err)
	}
	// Release the connection before loading artifacts.
	_ = rows.Close()

	for _, r := range runs {
		if err := d.loadArtifacts(r); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// DeleteRun removes a run and its artifact records by ID or prefix.
func (d *DB) DeleteRun(idOrPrefix string) error {
	id, err := d.resolveRunID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveRunID finds the full ID from a prefix.
func (d *DB) resolveRunID(idOrPrefix string) (string, error) {
	if isFullUUID(idOrPrefix) {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query(`SELECT id FROM runs WHERE id LIKE ? || '%'`, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve run ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan run ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

func (d *DB) loadArtifacts(r *models.Run) error {
	rows, err := d.db.Query(
		`SELECT name, path, bytes FROM run_artifacts WHERE run_id = ? ORDER BY position`,
		r.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("list run artifacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Artifact
		if err := rows.Scan(&a.Name, &a.Path, &a.Bytes); err != nil {
			return fmt.Errorf("scan run artifact: %w", err)
		}
		r.Artifacts = append(r.Artifacts, a)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.Run, error) {
	var r models.Run
	var idStr, source, snapshotAt, createdAt string
	var model sql.NullString

	err := row.Scan(&idStr, &source, &r.Provider, &model, &snapshotAt,
		&r.Summary, &r.Analysis, &r.WorkoutPlan, &r.NutritionPlan, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}

	r.ID, _ = uuid.Parse(idStr)
	r.Source = models.RunSource(source)
	r.SnapshotAt, _ = time.Parse(time.RFC3339, snapshotAt)
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if model.Valid {
		r.Model = model.String
	}

	return &r, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isFullUUID(s string) bool {
	return len(s) == 36 && strings.Count(s, "-") == 4
}
