package engine

import (
	"errors"
	"time"

	"disciplineforge/internal/config"
	"disciplineforge/internal/model"
)

var (
	// ErrTaskNotFound: the ledger was handed an id not present in the task
	// list. No mutation has happened when this comes back.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAlreadyCompleted: revive targeted a date that is already in the
	// task's completion set.
	ErrAlreadyCompleted = errors.New("date already completed")
)

// Ledger applies completion events to a task and the aggregate user stats,
// keeping streaks, XP, level and points consistent. It carries only balance
// numbers; all state lives in the records passed through it.
type Ledger struct {
	bal config.Balance
}

func NewLedger(bal config.Balance) *Ledger {
	return &Ledger{bal: bal}
}

// ToggleResult reports an applied completion event plus the signal flags the
// caller may want to celebrate on. The flags carry no state of their own.
type ToggleResult struct {
	Task  model.Task
	Stats model.UserStats

	// Completed is true when the event marked the task complete, false when
	// it unmarked it.
	Completed bool
	// LeveledUp is raised when the event pushed the level up.
	LeveledUp bool
	// StreakMilestone is raised when the overall streak grew onto a
	// milestone boundary (every StreakMilestoneDays days).
	StreakMilestone bool
}

// Level derives the level for an XP total: one level per XPPerLevel, floor 1.
func (l *Ledger) Level(xp int) int {
	per := l.bal.XPPerLevel
	if per <= 0 {
		per = config.DefaultBalance().XPPerLevel
	}
	if xp < 0 {
		xp = 0
	}
	return xp/per + 1
}

// Toggle flips today's completion state of the identified task and applies
// the stat deltas. tasks is the full task population; it is read for the
// overall streak but never mutated; the updated task comes back on the
// result for the caller to persist.
func (l *Ledger) Toggle(tasks []model.Task, taskID string, stats model.UserStats, today time.Time) (ToggleResult, error) {
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return ToggleResult{}, ErrTaskNotFound
	}

	task := tasks[idx].Clone()
	date := today.Format(model.DateLayout)

	res := ToggleResult{}
	if task.CompletedOn(date) {
		task.RemoveCompletedDate(date)
		stats.TotalTasksCompleted = floorZero(stats.TotalTasksCompleted - 1)
		stats.XP = floorZero(stats.XP - l.bal.CompletionXP)
		stats.DisciplinePoints = floorZero(stats.DisciplinePoints - l.bal.CompletionPoints)
		// Level is not decremented as such, but re-deriving it from the
		// reduced XP can lower it.
		stats.Level = l.Level(stats.XP)
	} else {
		task.AddCompletedDate(date)
		stats.TotalTasksCompleted++
		stats.XP += l.bal.CompletionXP
		stats.DisciplinePoints += l.bal.CompletionPoints
		if lvl := l.Level(stats.XP); lvl > stats.Level {
			stats.Level = lvl
			res.LeveledUp = true
		}
		res.Completed = true
	}

	res.Task, res.Stats = l.settle(tasks, idx, task, stats, today)
	res.StreakMilestone = res.Completed && l.onMilestone(stats.CurrentStreak, res.Stats.CurrentStreak)
	return res, nil
}

func (l *Ledger) onMilestone(prev, cur int) bool {
	every := l.bal.StreakMilestoneDays
	return every > 0 && cur > prev && cur%every == 0
}

// Revive backfills a completion for a previously missed due date and grants
// the revive bonus instead of the regular point reward. Unlike Toggle it is
// one-way: reviving a date that is already completed is an error.
func (l *Ledger) Revive(tasks []model.Task, taskID string, stats model.UserStats, missed time.Time, today time.Time) (ToggleResult, error) {
	idx := indexOf(tasks, taskID)
	if idx < 0 {
		return ToggleResult{}, ErrTaskNotFound
	}

	task := tasks[idx].Clone()
	date := missed.Format(model.DateLayout)
	if task.CompletedOn(date) {
		return ToggleResult{}, ErrAlreadyCompleted
	}

	task.AddCompletedDate(date)
	stats.TotalTasksCompleted++
	stats.XP += l.bal.CompletionXP
	stats.DisciplinePoints += l.bal.ReviveBonusPoints

	res := ToggleResult{Completed: true}
	if lvl := l.Level(stats.XP); lvl > stats.Level {
		stats.Level = lvl
		res.LeveledUp = true
	}

	prevStreak := stats.CurrentStreak
	res.Task, res.Stats = l.settle(tasks, idx, task, stats, today)
	res.StreakMilestone = l.onMilestone(prevStreak, res.Stats.CurrentStreak)
	return res, nil
}

// settle recomputes the derived streak fields after a mutation: the task's
// own streak, its best-streak high-water mark, and the overall streak across
// the population with the updated task substituted in.
func (l *Ledger) settle(tasks []model.Task, idx int, updated model.Task, stats model.UserStats, today time.Time) (model.Task, model.UserStats) {
	updated.Streak = TaskStreak(updated, today, l.bal.StreakLookbackDays)
	updated.BestStreak = max(updated.BestStreak, updated.Streak)

	population := make([]model.Task, len(tasks))
	copy(population, tasks)
	population[idx] = updated

	stats.CurrentStreak = OverallStreak(population, today, l.bal.StreakLookbackDays)
	stats.BestStreak = max(stats.BestStreak, stats.CurrentStreak)
	return updated, stats
}

func indexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
