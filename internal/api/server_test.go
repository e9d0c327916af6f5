// ABOUTME: Tests for the HTTP API using httptest.
// ABOUTME: Covers routing, summary rendering, run lookup and CORS headers.
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/storage"
	"github.com/harperreed/fitcoach/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)

func setupServer(t *testing.T) (*Server, *storage.DB) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "coach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewServer(db, []string{"http://localhost:5173"})
	s.now = func() time.Time { return testNow }
	return s, db
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func seedRun(t *testing.T, db *storage.DB, createdAt time.Time) *models.Run {
	t.Helper()
	r := models.NewRun(models.SourceAPI, createdAt)
	r.CreatedAt = createdAt
	r.WithGenerator("openai", "gpt-4o-mini")
	r.Summary = "summary"
	r.Analysis = "analysis"
	r.WorkoutPlan = "# Workout"
	r.NutritionPlan = "# Nutrition"
	require.NoError(t, db.CreateRun(r))
	return r
}

func TestHealthz(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSampleText(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s.Handler(), http.MethodGet, "/v1/sample", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.True(t, strings.HasPrefix(rec.Body.String(), summary.Header+"\nDate: 2025-03-14 09:05\n"), "got %q", rec.Body.String())
}

func TestSampleJSON(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s.Handler(), http.MethodGet, "/v1/sample?format=json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.NotNil(t, snap.UserProfile.Age)
	assert.Equal(t, 28, *snap.UserProfile.Age)
	assert.Len(t, snap.RecentWorkouts, 2)
}

func TestSummaryFromGroupedBody(t *testing.T) {
	s, _ := setupServer(t)

	body := `{"profile": {"age": "28", "gender": "skip"}, "body": {"weight": 65, "height": 168}, "cardio": {"resting_hr": "sixty"}, "mood": "good"}`
	rec := do(t, s.Handler(), http.MethodPost, "/v1/summary", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Summary, "- Age: 28\n")
	assert.Contains(t, resp.Summary, "- Gender: Not provided\n")
	assert.Contains(t, resp.Summary, "- BMI: 23.0\n")
	assert.Contains(t, resp.Summary, "- Resting HR: N/A bpm\n")
	assert.Equal(t, []string{"resting_hr=sixty"}, resp.Invalid)
	assert.Equal(t, []string{"mood"}, resp.Unknown)
	require.NotNil(t, resp.Snapshot.BodyComposition.BMI)
	assert.InDelta(t, 23.03, *resp.Snapshot.BodyComposition.BMI, 0.01)
}

func TestSummaryText(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s.Handler(), http.MethodPost, "/v1/summary?format=text", `{"age": 40}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "- Age: 40\n")
}

func TestSummaryBadBody(t *testing.T) {
	s, _ := setupServer(t)

	rec := do(t, s.Handler(), http.MethodPost, "/v1/summary", "not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
}

func TestSummaryBodyTooLarge(t *testing.T) {
	s, _ := setupServer(t)

	body := `{"age": "` + strings.Repeat("9", maxBodyBytes) + `"}`
	rec := do(t, s.Handler(), http.MethodPost, "/v1/summary", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestListRuns(t *testing.T) {
	s, db := setupServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/v1/runs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	seedRun(t, db, testNow.Add(-time.Hour))
	newest := seedRun(t, db, testNow)

	rec = do(t, h, http.MethodGet, "/v1/runs?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []*models.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, newest.ID, runs[0].ID)

	rec = do(t, h, http.MethodGet, "/v1/runs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRun(t *testing.T) {
	s, db := setupServer(t)
	h := s.Handler()
	r := seedRun(t, db, testNow)

	rec := do(t, h, http.MethodGet, "/v1/runs/"+r.ShortID(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "gpt-4o-mini", got.Model)

	rec = do(t, h, http.MethodGet, "/v1/runs/ffffffff", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := setupServer(t)

	h := s.Handler()

	rec := do(t, h, http.MethodDelete, "/v1/runs", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/summary", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSAllowedOrigin(t *testing.T) {
	s, _ := setupServer(t)
	h := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
