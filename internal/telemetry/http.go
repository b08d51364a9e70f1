package telemetry

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

// GET /api/telemetry/stats?days=N (default 7)
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeErr(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	now := time.Now()
	since := now.AddDate(0, 0, -days)
	writeJSON(w, http.StatusOK, CalculateStats(h.repo.ListSince(since), since, now))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
