package shop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"disciplineforge/internal/model"
)

func TestPurchase_DebitsPoints(t *testing.T) {
	item := model.ShopItem{ID: "bronze_trophy", Cost: 50}
	stats := model.UserStats{DisciplinePoints: 120}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	bought, updated, err := Purchase(item, stats, now)
	assert.NoError(t, err)
	assert.True(t, bought.Owned)
	assert.NotNil(t, bought.PurchasedAt)
	assert.Equal(t, now, *bought.PurchasedAt)
	assert.Equal(t, 70, updated.DisciplinePoints)
}

func TestPurchase_AlreadyOwned(t *testing.T) {
	item := model.ShopItem{ID: "bronze_trophy", Cost: 50, Owned: true}
	_, _, err := Purchase(item, model.UserStats{DisciplinePoints: 500}, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyOwned)
}

func TestPurchase_InsufficientPoints(t *testing.T) {
	item := model.ShopItem{ID: "diamond_crown", Cost: 500}
	_, _, err := Purchase(item, model.UserStats{DisciplinePoints: 499}, time.Now())
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestPurchase_ExactBalance(t *testing.T) {
	item := model.ShopItem{ID: "fire_badge", Cost: 100}
	_, updated, err := Purchase(item, model.UserStats{DisciplinePoints: 100}, time.Now())
	assert.NoError(t, err)
	assert.Zero(t, updated.DisciplinePoints)
}

func TestDefaults_CatalogShape(t *testing.T) {
	items := Defaults()
	assert.Len(t, items, 8)

	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.Positive(t, item.Cost)
		assert.False(t, item.Owned)
		assert.Nil(t, item.PurchasedAt)
	}
}
