package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"disciplineforge/internal/achievement"
	"disciplineforge/internal/config"
	"disciplineforge/internal/engine"
	"disciplineforge/internal/model"
	"disciplineforge/internal/player"
	"disciplineforge/internal/telemetry"
)

// Handler serves the task collection and the completion endpoints built on
// top of it. Toggle and Revive are the only paths that mutate player stats
// and achievements, so the handler owns those repos too.
type Handler struct {
	repo         Repo
	players      player.Repo
	achievements achievement.Repo
	ledger       *engine.Ledger
	events       telemetry.Repo
	bal          config.Balance

	// now is swappable for tests.
	now func() time.Time
}

func NewHandler(repo Repo, players player.Repo, achievements achievement.Repo, ledger *engine.Ledger, events telemetry.Repo, bal config.Balance) *Handler {
	return &Handler{
		repo:         repo,
		players:      players,
		achievements: achievements,
		ledger:       ledger,
		events:       events,
		bal:          bal,
		now:          time.Now,
	}
}

// GET /api/tasks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repo.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// createRequest is the user-editable slice of a task. Engine-managed fields
// are absent so a client cannot seed streaks or completion history.
type createRequest struct {
	Name             string          `json:"name"`
	Frequency        model.Frequency `json:"frequency"`
	WeeklyDay        *int            `json:"weeklyDay"`
	CustomDays       []int           `json:"customDays"`
	TimeReminder     string          `json:"timeReminder"`
	MotivationalNote string          `json:"motivationalNote"`
}

// POST /api/tasks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req createRequest
	if err := dec.Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	created, err := h.repo.Create(model.Task{
		Name:             req.Name,
		Frequency:        req.Frequency,
		WeeklyDay:        req.WeeklyDay,
		CustomDays:       req.CustomDays,
		TimeReminder:     req.TimeReminder,
		MotivationalNote: req.MotivationalNote,
	})
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.events != nil {
		h.events.Record(telemetry.EventTaskCreated, map[string]any{
			"task_id":   created.ID,
			"frequency": string(created.Frequency),
		})
	}
	writeJSON(w, http.StatusCreated, created)
}

// GET /api/tasks/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.repo.Get(r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// PATCH /api/tasks/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var p Patch
	if err := dec.Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	updated, err := h.repo.Patch(r.PathValue("id"), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeErr(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalid):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DELETE /api/tasks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h.events != nil {
		h.events.Record(telemetry.EventTaskDeleted, map[string]any{"task_id": id})
	}
	w.WriteHeader(http.StatusNoContent)
}

type toggleResponse struct {
	Task                 model.Task      `json:"task"`
	Stats                model.UserStats `json:"stats"`
	Completed            bool            `json:"completed"`
	LeveledUp            bool            `json:"leveledUp"`
	StreakMilestone      bool            `json:"streakMilestone"`
	UnlockedAchievements []string        `json:"unlockedAchievements"`
}

// POST /api/tasks/{id}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.applyCompletion(w, r, "", func(tasks []model.Task, stats model.UserStats, now time.Time) (engine.ToggleResult, error) {
		return h.ledger.Toggle(tasks, r.PathValue("id"), stats, now)
	})
}

type reviveRequest struct {
	Date string `json:"date"`
}

// POST /api/tasks/{id}/revive
func (h *Handler) Revive(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req reviveRequest
	if err := dec.Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	missed, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q: want %s", req.Date, model.DateLayout))
		return
	}
	h.applyCompletion(w, r, telemetry.EventTaskRevived, func(tasks []model.Task, stats model.UserStats, now time.Time) (engine.ToggleResult, error) {
		return h.ledger.Revive(tasks, r.PathValue("id"), stats, missed, now)
	})
}

// applyCompletion runs one completion event end to end: ledger math, the two
// repo writes, achievement evaluation and telemetry. Toggle and Revive differ
// in the ledger call and the recorded event type; an empty eventType means
// "derive from the toggle direction".
func (h *Handler) applyCompletion(w http.ResponseWriter, r *http.Request, eventType telemetry.EventType, apply func([]model.Task, model.UserStats, time.Time) (engine.ToggleResult, error)) {
	tasks, err := h.repo.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats, err := h.players.Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := h.now()
	res, err := apply(tasks, stats, now)
	switch {
	case errors.Is(err, engine.ErrTaskNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, engine.ErrAlreadyCompleted):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.repo.Put(res.Task); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.players.Put(res.Stats); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	unlocked := h.evaluateAchievements(res.Stats, now)
	h.recordCompletion(res, eventType, unlocked)

	writeJSON(w, http.StatusOK, toggleResponse{
		Task:                 res.Task,
		Stats:                res.Stats,
		Completed:            res.Completed,
		LeveledUp:            res.LeveledUp,
		StreakMilestone:      res.StreakMilestone,
		UnlockedAchievements: unlocked,
	})
}

// evaluateAchievements persists any newly satisfied achievements. A failure
// here never fails the completion: the stats write already landed and the
// next event re-evaluates from scratch anyway.
func (h *Handler) evaluateAchievements(stats model.UserStats, now time.Time) []string {
	if h.achievements == nil {
		return nil
	}
	list, err := h.achievements.List()
	if err != nil {
		return nil
	}
	updated, unlocked := engine.EvaluateAchievements(stats, list, now)
	if len(unlocked) == 0 {
		return nil
	}
	if err := h.achievements.ReplaceAll(updated); err != nil {
		return nil
	}
	return unlocked
}

func (h *Handler) recordCompletion(res engine.ToggleResult, typ telemetry.EventType, unlocked []string) {
	if h.events == nil {
		return
	}
	if typ == "" {
		typ = telemetry.EventTaskUncompleted
		if res.Completed {
			typ = telemetry.EventTaskCompleted
		}
	}
	h.events.Record(typ, map[string]any{
		"task_id": res.Task.ID,
		"streak":  res.Task.Streak,
	})
	if res.LeveledUp {
		h.events.Record(telemetry.EventLevelUp, map[string]any{"level": res.Stats.Level})
	}
	if res.StreakMilestone {
		h.events.Record(telemetry.EventStreakMilestone, map[string]any{"streak": res.Stats.CurrentStreak})
	}
	for _, id := range unlocked {
		h.events.Record(telemetry.EventAchievementUnlocked, map[string]any{"achievement_id": id})
	}
}

// GET /api/heatmap?days=N
func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	days := h.bal.HeatmapWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 366 {
			writeErr(w, http.StatusBadRequest, "days must be an integer between 1 and 366")
			return
		}
		days = n
	}
	tasks, err := h.repo.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, engine.CompletionHistory(tasks, h.now(), days))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
