package ops

import (
	"disciplineforge/internal/model"
	"disciplineforge/internal/task"
)

// SeedSampleTasks creates a small starter set of tasks so a fresh install
// has something to toggle. Repeated runs create duplicates; it is meant for
// empty data directories.
func SeedSampleTasks(repo task.Repo) ([]model.Task, error) {
	monday := 1
	samples := []model.Task{
		{
			Name:             "Morning workout",
			Frequency:        model.FrequencyDaily,
			TimeReminder:     "07:00",
			MotivationalNote: "Strong body, strong mind.",
		},
		{
			Name:      "Weekly review",
			Frequency: model.FrequencyWeekly,
			WeeklyDay: &monday,
		},
		{
			Name:       "Read 20 pages",
			Frequency:  model.FrequencyCustom,
			CustomDays: []int{1, 3, 5},
		},
	}

	created := make([]model.Task, 0, len(samples))
	for _, s := range samples {
		t, err := repo.Create(s)
		if err != nil {
			return created, err
		}
		created = append(created, t)
	}
	return created, nil
}
