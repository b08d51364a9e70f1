package model

import "time"

type ShopCategory string

const (
	ShopTrophy  ShopCategory = "trophy"
	ShopBadge   ShopCategory = "badge"
	ShopSpecial ShopCategory = "special"
)

// ShopItem is a cosmetic purchasable paid for with discipline points.
type ShopItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Cost        int          `json:"cost"`
	Category    ShopCategory `json:"category"`

	// Owned is one-way, like Achievement.Unlocked.
	Owned       bool       `json:"owned"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`
}
