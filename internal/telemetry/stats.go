package telemetry

import "time"

type Stats struct {
	Period               string            `json:"period"`
	EventCounts          map[EventType]int `json:"event_counts"`
	TaskCompletions      int               `json:"task_completions"`
	TaskUncompletions    int               `json:"task_uncompletions"`
	Revives              int               `json:"revives"`
	LevelUps             int               `json:"level_ups"`
	AchievementsUnlocked int               `json:"achievements_unlocked"`
	Purchases            int               `json:"purchases"`
	CompletionsPerDay    float64           `json:"completions_per_day"`
}

// CalculateStats derives usage counters from the event log.
func CalculateStats(events []Event, since time.Time, now time.Time) Stats {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		switch event.Type {
		case EventTaskCompleted:
			stats.TaskCompletions++
		case EventTaskUncompleted:
			stats.TaskUncompletions++
		case EventTaskRevived:
			stats.Revives++
		case EventLevelUp:
			stats.LevelUps++
		case EventAchievementUnlocked:
			stats.AchievementsUnlocked++
		case EventItemPurchased:
			stats.Purchases++
		}
	}

	if days := now.Sub(since).Hours() / 24; days >= 1 {
		stats.CompletionsPerDay = float64(stats.TaskCompletions) / days
	} else {
		stats.CompletionsPerDay = float64(stats.TaskCompletions)
	}
	return stats
}
