package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"disciplineforge/internal/model"
)

func dailyTask(dates ...string) model.Task {
	return model.Task{
		ID:             "t1",
		Name:           "meditate",
		Frequency:      model.FrequencyDaily,
		CompletedDates: dates,
	}
}

func TestTaskStreak_NoCompletions(t *testing.T) {
	task := dailyTask()

	assert.Equal(t, 0, TaskStreak(task, day(t, "2024-01-03"), 365))
}

func TestTaskStreak_TwoDayRun(t *testing.T) {
	task := dailyTask("2024-01-01", "2024-01-02")

	// Today not yet completed: the backward walk alone yields 2.
	assert.Equal(t, 2, TaskStreak(task, day(t, "2024-01-03"), 365))
}

func TestTaskStreak_TodayExtendsRun(t *testing.T) {
	task := dailyTask("2024-01-01", "2024-01-02", "2024-01-03")

	assert.Equal(t, 3, TaskStreak(task, day(t, "2024-01-03"), 365))
}

func TestTaskStreak_BrokenByMissedDueDay(t *testing.T) {
	// Gap on the 2nd kills everything before it.
	task := dailyTask("2024-01-01", "2024-01-03")

	assert.Equal(t, 1, TaskStreak(task, day(t, "2024-01-03"), 365))
}

func TestTaskStreak_TodayCountsEvenAfterBreak(t *testing.T) {
	// Yesterday was due and missed; completing today still shows 1. The
	// repaired-streak-shows-one behavior is intentional.
	task := dailyTask("2024-01-01", "2024-01-04")

	assert.Equal(t, 1, TaskStreak(task, day(t, "2024-01-04"), 365))
}

func TestTaskStreak_NotDueDaysAreSkipped(t *testing.T) {
	// Weekly Monday task completed three Mondays running. The six days
	// between Mondays are not due and must not break the walk.
	task := model.Task{
		Frequency:      model.FrequencyWeekly,
		WeeklyDay:      intPtr(1),
		CompletedDates: []string{"2024-01-01", "2024-01-08", "2024-01-15"},
	}

	// Tuesday the 16th: all three Mondays count.
	assert.Equal(t, 3, TaskStreak(task, day(t, "2024-01-16"), 365))
}

func TestTaskStreak_LookbackCap(t *testing.T) {
	task := dailyTask("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04")

	// A 3-day window can only see 2 back-days plus today.
	assert.Equal(t, 3, TaskStreak(task, day(t, "2024-01-04"), 3))
}

func TestOverallStreak_NoTasks(t *testing.T) {
	assert.Equal(t, 0, OverallStreak(nil, day(t, "2024-01-03"), 365))
}

func TestOverallStreak_AllDueCompleted(t *testing.T) {
	a := dailyTask("2024-01-01", "2024-01-02", "2024-01-03")
	b := dailyTask("2024-01-01", "2024-01-02", "2024-01-03")
	b.ID = "t2"

	assert.Equal(t, 3, OverallStreak([]model.Task{a, b}, day(t, "2024-01-03"), 365))
}

func TestOverallStreak_OneIncompleteDueTaskBreaks(t *testing.T) {
	a := dailyTask("2024-01-01", "2024-01-02", "2024-01-03")
	b := dailyTask("2024-01-01", "2024-01-03")
	b.ID = "t2"

	// The 3rd is fully satisfied, the 2nd is not.
	assert.Equal(t, 1, OverallStreak([]model.Task{a, b}, day(t, "2024-01-03"), 365))
}

func TestOverallStreak_DayWithNothingDueIsNeutral(t *testing.T) {
	// Weekly Monday task only: Tue-Sun have zero due tasks and are skipped,
	// so two consecutive completed Mondays give a streak of 2.
	task := model.Task{
		Frequency:      model.FrequencyWeekly,
		WeeklyDay:      intPtr(1),
		CompletedDates: []string{"2024-01-01", "2024-01-08"},
	}

	assert.Equal(t, 2, OverallStreak([]model.Task{task}, day(t, "2024-01-10"), 365))
}

func TestOverallStreak_NeverSatisfied(t *testing.T) {
	task := dailyTask()

	assert.Equal(t, 0, OverallStreak([]model.Task{task}, day(t, "2024-01-03"), 365))
}

func TestStreaks_IndependentOfEachOther(t *testing.T) {
	// Per-task streak counts today's completion; overall streak breaks on
	// the second task. They disagree by design.
	a := dailyTask("2024-01-02", "2024-01-03")
	b := dailyTask()
	b.ID = "t2"

	today := day(t, "2024-01-03")
	assert.Equal(t, 2, TaskStreak(a, today, 365))
	assert.Equal(t, 0, OverallStreak([]model.Task{a, b}, today, 365))
}
