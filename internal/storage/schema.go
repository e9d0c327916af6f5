// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the runs table and the run_artifacts table that hangs off it.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT,
		snapshot_at DATETIME NOT NULL,
		summary TEXT NOT NULL,
		analysis TEXT NOT NULL,
		workout_plan TEXT NOT NULL,
		nutrition_plan TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_artifacts (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		bytes INTEGER NOT NULL,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
	`

	_, err := d.db.Exec(schema)
	return err
}
