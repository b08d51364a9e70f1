package shop

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"disciplineforge/internal/model"
	"disciplineforge/internal/player"
	"disciplineforge/internal/telemetry"
)

func newShopHandlerForTests(t *testing.T, points int) (*Handler, *MemoryRepo, *player.MemoryRepo, *telemetry.MemoryRepo) {
	t.Helper()

	repo := NewMemoryRepo()
	players := player.NewMemoryRepo()
	events := telemetry.NewMemoryRepo()

	stats, err := players.Get()
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	stats.DisciplinePoints = points
	if err := players.Put(stats); err != nil {
		t.Fatalf("put stats: %v", err)
	}

	h := NewHandler(repo, players, events)
	h.now = func() time.Time {
		return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	}
	return h, repo, players, events
}

func purchaseReq(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/shop/"+id+"/purchase", nil)
	req.SetPathValue("id", id)
	return req
}

func TestList_FullCatalog(t *testing.T) {
	h, _, _, _ := newShopHandlerForTests(t, 0)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/shop", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var items []model.ShopItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 8 {
		t.Fatalf("expected 8 items, got %d", len(items))
	}
}

func TestPurchase_HappyPath(t *testing.T) {
	h, repo, players, events := newShopHandlerForTests(t, 200)

	rec := httptest.NewRecorder()
	h.Purchase(rec, purchaseReq("bronze_trophy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Item  model.ShopItem  `json:"item"`
		Stats model.UserStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Item.Owned || resp.Stats.DisciplinePoints != 150 {
		t.Fatalf("unexpected purchase result: %+v", resp)
	}

	// Persisted on both sides.
	stored, err := repo.Get("bronze_trophy")
	if err != nil || !stored.Owned {
		t.Fatalf("item write not persisted: %+v err=%v", stored, err)
	}
	stats, _ := players.Get()
	if stats.DisciplinePoints != 150 {
		t.Fatalf("stats write not persisted: %+v", stats)
	}

	evs := events.ListSince(time.Time{})
	if len(evs) != 1 || evs[0].Type != telemetry.EventItemPurchased {
		t.Fatalf("expected one item_purchased event, got %+v", evs)
	}
}

func TestPurchase_InsufficientPointsStatus(t *testing.T) {
	h, _, _, _ := newShopHandlerForTests(t, 10)

	rec := httptest.NewRecorder()
	h.Purchase(rec, purchaseReq("gold_trophy"))
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
}

func TestPurchase_AlreadyOwnedStatus(t *testing.T) {
	h, _, _, _ := newShopHandlerForTests(t, 500)

	rec := httptest.NewRecorder()
	h.Purchase(rec, purchaseReq("bronze_trophy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("first purchase: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Purchase(rec, purchaseReq("bronze_trophy"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("second purchase: expected 409, got %d", rec.Code)
	}
}

func TestPurchase_UnknownItem(t *testing.T) {
	h, _, _, _ := newShopHandlerForTests(t, 500)

	rec := httptest.NewRecorder()
	h.Purchase(rec, purchaseReq("mystery_box"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
