package model

import "time"

// AchievementType selects which UserStats field an achievement is measured
// against.
type AchievementType string

const (
	AchievementStreak AchievementType = "streak"
	AchievementTasks  AchievementType = "tasks"
	AchievementLevel  AchievementType = "level"
	AchievementPoints AchievementType = "points"
)

func (a AchievementType) IsValid() bool {
	switch a {
	case AchievementStreak, AchievementTasks, AchievementLevel, AchievementPoints:
		return true
	default:
		return false
	}
}

type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`

	// Unlocked is one-way: once true it never reverts.
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
