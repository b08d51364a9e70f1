// Package shop is the points economy boundary: cosmetic items bought with
// discipline points. It consumes the stats record but never grants points;
// earning is the ledger's job.
package shop

import (
	"errors"
	"time"

	"disciplineforge/internal/model"
)

var (
	ErrNotFound           = errors.New("shop item not found")
	ErrAlreadyOwned       = errors.New("item already owned")
	ErrInsufficientPoints = errors.New("not enough discipline points")
)

type Repo interface {
	List() ([]model.ShopItem, error)
	Get(id string) (model.ShopItem, error)
	Put(model.ShopItem) error
}

// Purchase applies a buy: marks the item owned, stamps it, and debits the
// points. Pure; the caller persists both returned records. Ownership is
// one-way and a short balance rejects the whole purchase.
func Purchase(item model.ShopItem, stats model.UserStats, now time.Time) (model.ShopItem, model.UserStats, error) {
	if item.Owned {
		return model.ShopItem{}, model.UserStats{}, ErrAlreadyOwned
	}
	if stats.DisciplinePoints < item.Cost {
		return model.ShopItem{}, model.UserStats{}, ErrInsufficientPoints
	}

	stats.DisciplinePoints -= item.Cost
	item.Owned = true
	at := now
	item.PurchasedAt = &at
	return item, stats, nil
}

// Defaults is the shipped storefront.
func Defaults() []model.ShopItem {
	return []model.ShopItem{
		{ID: "bronze_trophy", Name: "Bronze Trophy", Description: "Your first trophy", Icon: "🥉", Cost: 50, Category: model.ShopTrophy},
		{ID: "silver_trophy", Name: "Silver Trophy", Description: "For the dedicated", Icon: "🥈", Cost: 150, Category: model.ShopTrophy},
		{ID: "gold_trophy", Name: "Gold Trophy", Description: "Champion's reward", Icon: "🥇", Cost: 300, Category: model.ShopTrophy},
		{ID: "diamond_crown", Name: "Diamond Crown", Description: "Ultimate achievement", Icon: "👑", Cost: 500, Category: model.ShopTrophy},
		{ID: "fire_badge", Name: "Fire Badge", Description: "Burning motivation", Icon: "🔥", Cost: 100, Category: model.ShopBadge},
		{ID: "lightning_badge", Name: "Lightning Badge", Description: "Swift and powerful", Icon: "⚡", Cost: 100, Category: model.ShopBadge},
		{ID: "star_badge", Name: "Star Badge", Description: "Shine bright", Icon: "✨", Cost: 120, Category: model.ShopBadge},
		{ID: "rocket_badge", Name: "Rocket Badge", Description: "To the moon", Icon: "🚀", Cost: 150, Category: model.ShopBadge},
	}
}
