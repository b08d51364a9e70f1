package engine

import (
	"math"
	"time"

	"disciplineforge/internal/model"
)

// DailyCompletion summarizes one calendar day: how many tasks were due, how
// many of those were completed, and the rounded percentage. Read-only.
func DailyCompletion(tasks []model.Task, day time.Time) model.CompletionRecord {
	date := day.Format(model.DateLayout)
	rec := model.CompletionRecord{Date: date}

	due := dueTasks(tasks, day)
	rec.TotalCount = len(due)
	if len(due) == 0 {
		return rec
	}

	for _, t := range due {
		if t.CompletedOn(date) {
			rec.CompletedCount++
		}
	}
	rec.Percentage = int(math.Round(float64(rec.CompletedCount) / float64(rec.TotalCount) * 100))
	return rec
}

// CompletionHistory returns one record per day over the trailing window
// ending at today, oldest first. It is purely derived from current task
// state; calling it again restarts from scratch.
func CompletionHistory(tasks []model.Task, today time.Time, windowDays int) []model.CompletionRecord {
	if windowDays <= 0 {
		windowDays = 28
	}
	out := make([]model.CompletionRecord, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		out = append(out, DailyCompletion(tasks, today.AddDate(0, 0, -i)))
	}
	return out
}
