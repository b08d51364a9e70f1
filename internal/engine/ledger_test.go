package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disciplineforge/internal/config"
	"disciplineforge/internal/model"
)

func testLedger() *Ledger {
	return NewLedger(config.DefaultBalance())
}

func TestToggle_Complete(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-01", "2024-01-02")}
	stats := model.DefaultUserStats()
	today := day(t, "2024-01-03")

	res, err := led.Toggle(tasks, "t1", stats, today)
	require.NoError(t, err)

	assert.True(t, res.Completed)
	assert.True(t, res.Task.CompletedOn("2024-01-03"))
	assert.Equal(t, 3, res.Task.Streak)
	assert.Equal(t, 3, res.Task.BestStreak)
	assert.Equal(t, 1, res.Stats.TotalTasksCompleted)
	assert.Equal(t, 10, res.Stats.XP)
	assert.Equal(t, 5, res.Stats.DisciplinePoints)
	assert.Equal(t, 3, res.Stats.CurrentStreak)
	assert.Equal(t, 3, res.Stats.BestStreak)

	// The input slice must be untouched.
	assert.False(t, tasks[0].CompletedOn("2024-01-03"))
}

func TestToggle_Uncomplete(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-03")}
	tasks[0].Streak = 1
	tasks[0].BestStreak = 1
	stats := model.UserStats{Level: 1, XP: 10, DisciplinePoints: 5, TotalTasksCompleted: 1, CurrentStreak: 1, BestStreak: 1}

	res, err := led.Toggle(tasks, "t1", stats, day(t, "2024-01-03"))
	require.NoError(t, err)

	assert.False(t, res.Completed)
	assert.False(t, res.Task.CompletedOn("2024-01-03"))
	assert.Equal(t, 0, res.Task.Streak)
	assert.Equal(t, 0, res.Stats.TotalTasksCompleted)
	assert.Equal(t, 0, res.Stats.XP)
	assert.Equal(t, 0, res.Stats.DisciplinePoints)
	assert.Equal(t, 0, res.Stats.CurrentStreak)
	// Best streaks are high-water marks and survive the un-complete.
	assert.Equal(t, 1, res.Task.BestStreak)
	assert.Equal(t, 1, res.Stats.BestStreak)
}

func TestToggle_OnThenOffRestoresCompletionSet(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-01", "2024-01-02")}
	stats := model.DefaultUserStats()
	today := day(t, "2024-01-03")

	on, err := led.Toggle(tasks, "t1", stats, today)
	require.NoError(t, err)
	tasks[0] = on.Task

	off, err := led.Toggle(tasks, "t1", on.Stats, today)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, off.Task.CompletedDates)
	assert.Equal(t, 0, off.Stats.XP)
	assert.Equal(t, 3, off.Task.BestStreak) // monotonic, keeps the peak
}

func TestToggle_UncompleteClampsAtZero(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-03")}
	stats := model.UserStats{Level: 1, XP: 4, DisciplinePoints: 2, TotalTasksCompleted: 0}

	res, err := led.Toggle(tasks, "t1", stats, day(t, "2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Stats.XP)
	assert.Equal(t, 0, res.Stats.DisciplinePoints)
	assert.Equal(t, 0, res.Stats.TotalTasksCompleted)
}

func TestToggle_LevelUpAtHundredXP(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask()}
	stats := model.UserStats{Level: 1, XP: 95}

	res, err := led.Toggle(tasks, "t1", stats, day(t, "2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, 105, res.Stats.XP)
	assert.Equal(t, 2, res.Stats.Level)
	assert.True(t, res.LeveledUp)
}

func TestToggle_UncompleteCanDropLevel(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-03")}
	stats := model.UserStats{Level: 2, XP: 105, DisciplinePoints: 50, TotalTasksCompleted: 10}

	res, err := led.Toggle(tasks, "t1", stats, day(t, "2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, 95, res.Stats.XP)
	assert.Equal(t, 1, res.Stats.Level)
	assert.False(t, res.LeveledUp)
}

func TestToggle_LevelFormulaHolds(t *testing.T) {
	led := testLedger()
	for xp := 0; xp <= 10_000; xp += 10 {
		assert.Equal(t, xp/100+1, led.Level(xp), "xp=%d", xp)
	}
}

func TestToggle_UnknownTask(t *testing.T) {
	led := testLedger()

	_, err := led.Toggle([]model.Task{dailyTask()}, "nope", model.DefaultUserStats(), day(t, "2024-01-03"))
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestToggle_StoredStreakMatchesRecomputation(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-01")}
	stats := model.DefaultUserStats()

	for _, d := range []string{"2024-01-02", "2024-01-03", "2024-01-03", "2024-01-04"} {
		res, err := led.Toggle(tasks, "t1", stats, day(t, d))
		require.NoError(t, err)
		tasks[0] = res.Task
		stats = res.Stats

		recomputed := TaskStreak(res.Task, day(t, d), 365)
		assert.Equal(t, recomputed, res.Task.Streak, "after toggle on %s", d)
		assert.GreaterOrEqual(t, res.Task.BestStreak, res.Task.Streak)
	}
}

func TestToggle_StreakMilestone(t *testing.T) {
	led := testLedger()
	dates := make([]string, 0, 6)
	base := day(t, "2024-01-01")
	for i := 0; i < 6; i++ {
		dates = append(dates, base.AddDate(0, 0, i).Format(model.DateLayout))
	}
	tasks := []model.Task{dailyTask(dates...)}
	stats := model.UserStats{Level: 1, CurrentStreak: 6, BestStreak: 6}

	// Seventh consecutive day completes -> milestone.
	res, err := led.Toggle(tasks, "t1", stats, day(t, "2024-01-07"))
	require.NoError(t, err)

	assert.Equal(t, 7, res.Stats.CurrentStreak)
	assert.True(t, res.StreakMilestone)
}

func TestRevive_BackfillsMissedDate(t *testing.T) {
	led := testLedger()
	// Missed the 2nd, completed around it.
	tasks := []model.Task{dailyTask("2024-01-01", "2024-01-03")}
	stats := model.UserStats{Level: 1, XP: 20, DisciplinePoints: 10, TotalTasksCompleted: 2}

	res, err := led.Revive(tasks, "t1", stats, day(t, "2024-01-02"), day(t, "2024-01-03"))
	require.NoError(t, err)

	assert.True(t, res.Task.CompletedOn("2024-01-02"))
	assert.Equal(t, 30, res.Stats.XP)
	assert.Equal(t, 20, res.Stats.DisciplinePoints) // +10 bonus, not +5
	assert.Equal(t, 3, res.Stats.TotalTasksCompleted)
	// The repaired gap restores the full run.
	assert.Equal(t, 3, res.Task.Streak)
}

func TestRevive_AlreadyCompletedDate(t *testing.T) {
	led := testLedger()
	tasks := []model.Task{dailyTask("2024-01-02")}

	_, err := led.Revive(tasks, "t1", model.DefaultUserStats(), day(t, "2024-01-02"), day(t, "2024-01-03"))
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestRevive_UnknownTask(t *testing.T) {
	led := testLedger()

	_, err := led.Revive(nil, "missing", model.DefaultUserStats(), day(t, "2024-01-02"), day(t, "2024-01-03"))
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestLedger_CustomBalance(t *testing.T) {
	bal := config.DefaultBalance()
	bal.CompletionXP = 25
	bal.CompletionPoints = 3
	led := NewLedger(bal)

	res, err := led.Toggle([]model.Task{dailyTask()}, "t1", model.DefaultUserStats(), day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if res.Stats.XP != 25 || res.Stats.DisciplinePoints != 3 {
		t.Fatalf("balance not applied: %+v", res.Stats)
	}
}
