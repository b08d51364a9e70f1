package model

import (
	"slices"
	"time"
)

// DateLayout is the calendar-date form used everywhere a day is addressed:
// completion sets, heatmap cells, revive backfills. Local time.
const DateLayout = "2006-01-02"

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	default:
		return false
	}
}

type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Frequency Frequency `json:"frequency"`
	// WeeklyDay is set for weekly tasks: 0 = Sunday .. 6 = Saturday.
	WeeklyDay *int `json:"weeklyDay,omitempty"`
	// CustomDays is set for custom tasks; same 0-6 encoding.
	CustomDays []int `json:"customDays,omitempty"`

	TimeReminder     string `json:"timeReminder,omitempty"` // HH:MM
	MotivationalNote string `json:"motivationalNote,omitempty"`

	Streak     int `json:"streak"`
	BestStreak int `json:"bestStreak"`

	// CompletedDates holds unique DateLayout strings, append order.
	CompletedDates []string `json:"completedDates"`

	CreatedAt time.Time `json:"createdAt"`
}

func (t Task) CompletedOn(date string) bool {
	return slices.Contains(t.CompletedDates, date)
}

// AddCompletedDate records a completion; duplicates are ignored.
func (t *Task) AddCompletedDate(date string) {
	if t.CompletedOn(date) {
		return
	}
	t.CompletedDates = append(t.CompletedDates, date)
}

func (t *Task) RemoveCompletedDate(date string) {
	out := make([]string, 0, len(t.CompletedDates))
	for _, d := range t.CompletedDates {
		if d != date {
			out = append(out, d)
		}
	}
	t.CompletedDates = out
}

// Clone returns a copy that shares no slices with the receiver.
func (t Task) Clone() Task {
	out := t
	out.CompletedDates = slices.Clone(t.CompletedDates)
	out.CustomDays = slices.Clone(t.CustomDays)
	if t.WeeklyDay != nil {
		d := *t.WeeklyDay
		out.WeeklyDay = &d
	}
	return out
}
