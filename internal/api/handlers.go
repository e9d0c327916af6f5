// ABOUTME: HTTP handlers for the summary and run log endpoints.
// ABOUTME: JSON in, JSON out; the summary endpoint can also answer in plain text.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/harperreed/fitcoach/internal/intake"
	"github.com/harperreed/fitcoach/internal/models"
	"github.com/harperreed/fitcoach/internal/summary"
)

type summaryResponse struct {
	Snapshot *models.Snapshot `json:"snapshot"`
	Summary  string           `json:"summary"`
	Invalid  []string         `json:"invalid,omitempty"`
	Unknown  []string         `json:"unknown,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	snap := models.SampleSnapshot(s.now())

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, snap)
		return
	}
	writeText(w, http.StatusOK, summary.Render(snap))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	raw, err := intake.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := summaryResponse{}
	b := &intake.Builder{OnInvalid: func(key, value string) {
		resp.Invalid = append(resp.Invalid, key+"="+value)
	}}
	resp.Snapshot = b.Build(raw, s.now())
	resp.Summary = summary.Render(resp.Snapshot)
	resp.Unknown = intake.Unknown(raw)
	sort.Strings(resp.Unknown)

	if r.URL.Query().Get("format") == "text" {
		writeText(w, http.StatusOK, resp.Summary)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	runs, err := s.repo.ListRuns(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []*models.Run{}
	}

	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	run, err := s.repo.GetRun(id)
	if err != nil {
		switch {
		case strings.HasPrefix(err.Error(), "not found"):
			writeError(w, http.StatusNotFound, "run not found")
		case strings.HasPrefix(err.Error(), "ambiguous prefix"):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to get run")
		}
		return
	}

	writeJSON(w, http.StatusOK, run)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
