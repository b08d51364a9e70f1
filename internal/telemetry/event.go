package telemetry

import "time"

type EventType string

const (
	EventTaskCreated         EventType = "task_created"
	EventTaskDeleted         EventType = "task_deleted"
	EventTaskCompleted       EventType = "task_completed"
	EventTaskUncompleted     EventType = "task_uncompleted"
	EventTaskRevived         EventType = "task_revived"
	EventLevelUp             EventType = "level_up"
	EventStreakMilestone     EventType = "streak_milestone"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventItemPurchased       EventType = "item_purchased"
)

type Event struct {
	ID        int            `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Repo is the append-only event log.
type Repo interface {
	Record(typ EventType, metadata map[string]any)
	ListSince(since time.Time) []Event
}
