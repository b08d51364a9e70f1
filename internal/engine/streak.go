package engine

import (
	"time"

	"disciplineforge/internal/model"
)

// DefaultLookbackDays bounds streak walks when the caller passes no limit.
const DefaultLookbackDays = 365

// TaskStreak computes the task's current consecutive-completion streak as of
// today. The walk starts at yesterday and moves backward; days the task was
// not due are skipped, and the first missed due day ends the walk. If the
// task is completed today that counts too.
//
// Note the today bonus is unconditional: a streak broken yesterday shows 1,
// not 0, on the day it is repaired. That matches the shipped behavior and is
// kept deliberately.
func TaskStreak(t model.Task, today time.Time, lookbackDays int) int {
	if len(t.CompletedDates) == 0 {
		return 0
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	streak := 0
	for i := 1; i < lookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		if !IsDue(t, day) {
			continue
		}
		if !t.CompletedOn(day.Format(model.DateLayout)) {
			break
		}
		streak++
	}

	if t.CompletedOn(today.Format(model.DateLayout)) {
		streak++
	}
	return streak
}

// OverallStreak computes the population-wide streak: consecutive days,
// walking backward from today inclusive, on which every due task was
// completed. Days with nothing due are neutral: skipped, never a break.
func OverallStreak(tasks []model.Task, today time.Time, lookbackDays int) int {
	if len(tasks) == 0 {
		return 0
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}

	streak := 0
	for i := 0; i < lookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		date := day.Format(model.DateLayout)

		due := dueTasks(tasks, day)
		if len(due) == 0 {
			continue
		}

		allCompleted := true
		for _, t := range due {
			if !t.CompletedOn(date) {
				allCompleted = false
				break
			}
		}
		if !allCompleted {
			break
		}
		streak++
	}
	return streak
}
