// ABOUTME: Repository interface for the coaching run log.
// ABOUTME: Implemented by the SQLite, markdown and Charm backends.
package storage

import (
	"github.com/harperreed/fitcoach/internal/models"
)

// Repository defines the storage interface for runs.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	CreateRun(r *models.Run) error
	GetRun(idOrPrefix string) (*models.Run, error)
	// ListRuns returns runs newest first. A limit of 0 means no limit.
	ListRuns(limit int) ([]*models.Run, error)
	DeleteRun(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
