// Package engine derives streaks, XP/level progression, achievement unlocks
// and completion heatmaps from task records. Nothing in here does I/O or
// holds state between calls; every function takes records in and hands
// updated records back, so callers can snapshot-and-replace safely.
package engine

import (
	"slices"
	"time"

	"disciplineforge/internal/model"
)

// IsDue reports whether a task is scheduled to occur on the given day.
// A task with a malformed frequency (unknown variant, weekly without a day)
// is simply never due; scheduling stays total rather than erroring.
func IsDue(t model.Task, day time.Time) bool {
	switch t.Frequency {
	case model.FrequencyDaily:
		return true
	case model.FrequencyWeekly:
		return t.WeeklyDay != nil && *t.WeeklyDay == int(day.Weekday())
	case model.FrequencyCustom:
		return slices.Contains(t.CustomDays, int(day.Weekday()))
	default:
		return false
	}
}

// dueTasks filters tasks down to those scheduled on day.
func dueTasks(tasks []model.Task, day time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if IsDue(t, day) {
			out = append(out, t)
		}
	}
	return out
}
