// ABOUTME: Run log operations on the Charm KV store.
// ABOUTME: Runs are stored as JSON under run:<uuid> keys.
package charm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/storage"
)

var _ storage.Repository = (*Client)(nil)

func runKey(id uuid.UUID) string {
	return RunPrefix + id.String()
}

// CreateRun stores a run. An existing run with the same ID is an error.
func (c *Client) CreateRun(r *models.Run) error {
	key := runKey(r.ID)
	exists, err := c.has(key)
	if err != nil {
		return fmt.Errorf("check run: %w", err)
	}
	if exists {
		return fmt.Errorf("run %s already exists", r.ID)
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if err := c.set(key, data); err != nil {
		return fmt.Errorf("store run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by full ID or unique prefix.
func (c *Client) GetRun(idOrPrefix string) (*models.Run, error) {
	data, err := c.getByIDPrefix(RunPrefix, idOrPrefix)
	if err != nil {
		return nil, err
	}
	r, err := unmarshalJSON[models.Run](data)
	if err != nil {
		return nil, fmt.Errorf("decode run: %w", err)
	}
	return r, nil
}

// ListRuns returns runs newest first. A limit of 0 means no limit.
func (c *Client) ListRuns(limit int) ([]*models.Run, error) {
	values, err := c.listByPrefix(RunPrefix)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]*models.Run, 0, len(values))
	for _, v := range values {
		r, err := unmarshalJSON[models.Run](v)
		if err != nil {
			return nil, fmt.Errorf("decode run: %w", err)
		}
		runs = append(runs, r)
	}

	sortRuns(runs)
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// DeleteRun removes a run by full ID or unique prefix.
func (c *Client) DeleteRun(idOrPrefix string) error {
	return c.deleteByIDPrefix(RunPrefix, idOrPrefix)
}

// RunIDs returns the ID of every stored run in key order.
func (c *Client) RunIDs() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}
	prefix := []byte(RunPrefix)
	var ids []string
	for _, k := range keys {
		if bytes.HasPrefix(k, prefix) {
			ids = append(ids, extractID(string(k), RunPrefix))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// GetAllData retrieves all runs for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	runs, err := c.ListRuns(0)
	if err != nil {
		return nil, err
	}
	data := storage.NewExportData(runs)
	return data, nil
}

// ImportData stores every run of an export.
// Auto-sync is paused during the import and a single sync runs at the end.
func (c *Client) ImportData(data *storage.ExportData) error {
	c.mu.Lock()
	prev := c.autoSync
	c.autoSync = false
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.autoSync = prev
		c.mu.Unlock()
	}()

	for _, r := range data.Runs {
		if err := c.CreateRun(r); err != nil {
			return fmt.Errorf("import run: %w", err)
		}
	}

	if prev {
		return c.Sync()
	}
	return nil
}

func sortRuns(runs []*models.Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID.String() < runs[j].ID.String()
	})
}
