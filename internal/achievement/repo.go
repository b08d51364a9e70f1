// Package achievement owns the achievement catalog and its persistence.
// Unlock decisions live in the engine; this package just stores the list.
package achievement

import (
	"errors"
	"sync"

	"disciplineforge/internal/model"
)

var ErrNotFound = errors.New("achievement not found")

type Repo interface {
	List() ([]model.Achievement, error)
	// ReplaceAll swaps in an evaluated list wholesale; the evaluator always
	// returns a full replacement.
	ReplaceAll([]model.Achievement) error
}

// Defaults is the shipped catalog. IDs are stable; persistence merges on
// them so an unlock survives catalog reordering.
func Defaults() []model.Achievement {
	return []model.Achievement{
		{ID: "first_task", Name: "First Steps", Description: "Complete your first task", Icon: "🎯", Requirement: 1, Type: model.AchievementTasks},
		{ID: "week_warrior", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥", Requirement: 7, Type: model.AchievementStreak},
		{ID: "century_club", Name: "Century Club", Description: "Complete 100 tasks", Icon: "💯", Requirement: 100, Type: model.AchievementTasks},
		{ID: "level_master", Name: "Level Master", Description: "Reach level 10", Icon: "⭐", Requirement: 10, Type: model.AchievementLevel},
		{ID: "unstoppable", Name: "Unstoppable", Description: "Maintain a 30-day streak", Icon: "🏆", Requirement: 30, Type: model.AchievementStreak},
		{ID: "point_hoarder", Name: "Point Hoarder", Description: "Earn 1,000 discipline points", Icon: "💎", Requirement: 1000, Type: model.AchievementPoints},
	}
}

type MemoryRepo struct {
	mu   sync.RWMutex
	list []model.Achievement
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{list: Defaults()}
}

func (r *MemoryRepo) List() ([]model.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Achievement, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *MemoryRepo) ReplaceAll(list []model.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = make([]model.Achievement, len(list))
	copy(r.list, list)
	return nil
}
