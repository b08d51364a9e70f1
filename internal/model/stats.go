package model

// UserStats is the single aggregate progress record for the user.
// Level is always derived from XP; the progress ledger keeps them in sync.
type UserStats struct {
	Level               int `json:"level"`
	XP                  int `json:"xp"`
	DisciplinePoints    int `json:"disciplinePoints"`
	TotalTasksCompleted int `json:"totalTasksCompleted"`
	CurrentStreak       int `json:"currentStreak"`
	BestStreak          int `json:"bestStreak"`

	IsPremium              bool `json:"isPremium"`
	SoundEnabled           bool `json:"soundEnabled"`
	HasCompletedOnboarding bool `json:"hasCompletedOnboarding"`
}

func DefaultUserStats() UserStats {
	return UserStats{
		Level:        1,
		SoundEnabled: true,
	}
}
