package task

import (
	"errors"
	"fmt"
	"strings"

	"disciplineforge/internal/model"
)

var (
	ErrNotFound = errors.New("task not found")
	ErrInvalid  = errors.New("invalid task")
)

// Repo is the task collection boundary. Create and Patch own the
// user-editable fields; Put is the write path for engine results and
// replaces the whole record.
type Repo interface {
	Create(t model.Task) (model.Task, error)
	Get(id string) (model.Task, error)
	List() ([]model.Task, error)
	Patch(id string, p Patch) (model.Task, error)
	Put(t model.Task) (model.Task, error)
	Delete(id string) error
}

// Patch is a partial update of the task definition. nil pointer = no change;
// empty string on TimeReminder/MotivationalNote clears the field. Engine-
// managed fields (id, createdAt, streak, bestStreak, completedDates) have no
// representation here on purpose: they cannot be patched.
type Patch struct {
	Name             *string          `json:"name,omitempty"`
	Frequency        *model.Frequency `json:"frequency,omitempty"`
	WeeklyDay        *int             `json:"weeklyDay,omitempty"`
	CustomDays       *[]int           `json:"customDays,omitempty"`
	TimeReminder     *string          `json:"timeReminder,omitempty"`
	MotivationalNote *string          `json:"motivationalNote,omitempty"`
}

func ApplyPatch(t *model.Task, p Patch) {
	if p.Name != nil {
		t.Name = strings.TrimSpace(*p.Name)
	}
	if p.Frequency != nil {
		t.Frequency = *p.Frequency
	}
	if p.WeeklyDay != nil {
		d := *p.WeeklyDay
		t.WeeklyDay = &d
	}
	if p.CustomDays != nil {
		if *p.CustomDays == nil {
			t.CustomDays = []int{}
		} else {
			t.CustomDays = append([]int{}, (*p.CustomDays)...)
		}
	}
	if p.TimeReminder != nil {
		t.TimeReminder = strings.TrimSpace(*p.TimeReminder)
	}
	if p.MotivationalNote != nil {
		t.MotivationalNote = strings.TrimSpace(*p.MotivationalNote)
	}
}

// ValidateDefinition enforces exactly one coherent frequency variant at
// write time, which is what keeps the schedule resolver total downstream.
func ValidateDefinition(t model.Task) error {
	name := strings.TrimSpace(t.Name)
	if name == "" || len(name) > 100 {
		return fmt.Errorf("%w: name must be 1-100 characters", ErrInvalid)
	}
	switch t.Frequency {
	case model.FrequencyDaily:
	case model.FrequencyWeekly:
		if t.WeeklyDay == nil || *t.WeeklyDay < 0 || *t.WeeklyDay > 6 {
			return fmt.Errorf("%w: weekly tasks need weeklyDay 0-6", ErrInvalid)
		}
	case model.FrequencyCustom:
		if len(t.CustomDays) == 0 {
			return fmt.Errorf("%w: custom tasks need at least one day", ErrInvalid)
		}
		for _, d := range t.CustomDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: custom day %d out of range", ErrInvalid, d)
			}
		}
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalid, t.Frequency)
	}
	return nil
}

func NormalizeTask(t *model.Task) {
	if t.CompletedDates == nil {
		t.CompletedDates = []string{}
	}
}
