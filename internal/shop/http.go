package shop

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"disciplineforge/internal/model"
	"disciplineforge/internal/player"
	"disciplineforge/internal/telemetry"
)

type Handler struct {
	repo    Repo
	players player.Repo
	events  telemetry.Repo

	// now is swappable for tests.
	now func() time.Time
}

func NewHandler(repo Repo, players player.Repo, events telemetry.Repo) *Handler {
	return &Handler{
		repo:    repo,
		players: players,
		events:  events,
		now:     time.Now,
	}
}

// GET /api/shop
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type purchaseResponse struct {
	Item  model.ShopItem  `json:"item"`
	Stats model.UserStats `json:"stats"`
}

// POST /api/shop/{id}/purchase
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.repo.Get(id)
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	stats, err := h.players.Get()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	bought, updated, err := Purchase(item, stats, h.now())
	switch {
	case errors.Is(err, ErrAlreadyOwned):
		writeErr(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, ErrInsufficientPoints):
		writeErr(w, http.StatusPaymentRequired, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.repo.Put(bought); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.players.Put(updated); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.events != nil {
		h.events.Record(telemetry.EventItemPurchased, map[string]any{
			"item_id": bought.ID,
			"cost":    bought.Cost,
		})
	}

	writeJSON(w, http.StatusOK, purchaseResponse{Item: bought, Stats: updated})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}
