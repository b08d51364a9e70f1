package engine

import (
	"time"

	"disciplineforge/internal/model"
)

// EvaluateAchievements scans the achievement list against current stats and
// unlocks every not-yet-unlocked entry whose requirement is now met. It
// returns a full replacement list plus the ids that flipped on this call.
// Unlocks are monotonic: entries already unlocked are never re-checked, so
// dropping stats can never revoke one.
func EvaluateAchievements(stats model.UserStats, achievements []model.Achievement, now time.Time) ([]model.Achievement, []string) {
	updated := make([]model.Achievement, len(achievements))
	copy(updated, achievements)

	var newlyUnlocked []string
	for i := range updated {
		a := &updated[i]
		if a.Unlocked {
			continue
		}
		if achievementValue(stats, a.Type) < a.Requirement {
			continue
		}
		a.Unlocked = true
		at := now
		a.UnlockedAt = &at
		newlyUnlocked = append(newlyUnlocked, a.ID)
	}
	return updated, newlyUnlocked
}

// achievementValue picks the stat an achievement type is measured against.
// Unknown types compare against 0 and so never unlock.
func achievementValue(stats model.UserStats, typ model.AchievementType) int {
	switch typ {
	case model.AchievementTasks:
		return stats.TotalTasksCompleted
	case model.AchievementStreak:
		return stats.CurrentStreak
	case model.AchievementLevel:
		return stats.Level
	case model.AchievementPoints:
		return stats.DisciplinePoints
	default:
		return 0
	}
}
