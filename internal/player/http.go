package player

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

// prefsPatch is the only shape PATCH accepts: the three preference flags.
// Progress fields (xp, level, streaks, points) are engine-managed and any
// attempt to set them is rejected by the strict decoder.
type prefsPatch struct {
	IsPremium              *bool `json:"isPremium,omitempty"`
	SoundEnabled           *bool `json:"soundEnabled,omitempty"`
	HasCompletedOnboarding *bool `json:"hasCompletedOnboarding,omitempty"`
}

// GET /api/player/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// PATCH /api/player/stats
func (h *Handler) UpdatePrefs(w http.ResponseWriter, r *http.Request) {
	var p prefsPatch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid stats patch: "+err.Error())
		return
	}

	stats, err := h.repo.Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p.IsPremium != nil {
		stats.IsPremium = *p.IsPremium
	}
	if p.SoundEnabled != nil {
		stats.SoundEnabled = *p.SoundEnabled
	}
	if p.HasCompletedOnboarding != nil {
		stats.HasCompletedOnboarding = *p.HasCompletedOnboarding
	}
	if err := h.repo.Put(stats); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
