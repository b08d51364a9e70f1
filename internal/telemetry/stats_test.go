package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStats_Counters(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	since := now.AddDate(0, 0, -7)

	events := []Event{
		{Type: EventTaskCompleted, Timestamp: now.AddDate(0, 0, -1)},
		{Type: EventTaskCompleted, Timestamp: now.AddDate(0, 0, -2)},
		{Type: EventTaskUncompleted, Timestamp: now.AddDate(0, 0, -2)},
		{Type: EventTaskRevived, Timestamp: now.AddDate(0, 0, -3)},
		{Type: EventLevelUp, Timestamp: now.AddDate(0, 0, -1)},
		{Type: EventAchievementUnlocked, Timestamp: now.AddDate(0, 0, -1)},
		{Type: EventItemPurchased, Timestamp: now.AddDate(0, 0, -4)},
	}

	stats := CalculateStats(events, since, now)
	assert.Equal(t, 2, stats.TaskCompletions)
	assert.Equal(t, 1, stats.TaskUncompletions)
	assert.Equal(t, 1, stats.Revives)
	assert.Equal(t, 1, stats.LevelUps)
	assert.Equal(t, 1, stats.AchievementsUnlocked)
	assert.Equal(t, 1, stats.Purchases)
	assert.InDelta(t, 2.0/7.0, stats.CompletionsPerDay, 1e-9)
	assert.Equal(t, 2, stats.EventCounts[EventTaskCompleted])
}

func TestCalculateStats_SubDayPeriod(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	since := now.Add(-2 * time.Hour)

	stats := CalculateStats([]Event{
		{Type: EventTaskCompleted, Timestamp: now.Add(-time.Hour)},
	}, since, now)
	assert.Equal(t, 1.0, stats.CompletionsPerDay)
}

func TestMemoryRepo_ListSinceFilters(t *testing.T) {
	repo := NewMemoryRepo()
	repo.Record(EventTaskCompleted, map[string]any{"task_id": "t1"})
	repo.Record(EventLevelUp, nil)

	all := repo.ListSince(time.Time{})
	assert.Len(t, all, 2)
	assert.NotEmpty(t, all[0].ID)
	assert.Equal(t, "t1", all[0].Metadata["task_id"])

	future := repo.ListSince(time.Now().Add(time.Hour))
	assert.Empty(t, future)
}

func TestMemoryRepo_Bounded(t *testing.T) {
	repo := &MemoryRepo{limit: 5}
	for i := 0; i < 12; i++ {
		repo.Record(EventTaskCompleted, map[string]any{"n": i})
	}

	kept := repo.ListSince(time.Time{})
	assert.Len(t, kept, 5)
	// Newest events survive.
	assert.Equal(t, 11, kept[len(kept)-1].Metadata["n"])
}
