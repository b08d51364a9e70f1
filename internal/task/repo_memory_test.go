package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"disciplineforge/internal/model"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestMemoryRepo_CreateAssignsManagedFields(t *testing.T) {
	repo := NewMemoryRepo()

	created, err := repo.Create(model.Task{
		Name:      "Drink water",
		Frequency: model.FrequencyDaily,
		// A client may send these; Create must ignore them.
		Streak:         99,
		BestStreak:     99,
		CompletedDates: []string{"2024-01-01"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Zero(t, created.Streak)
	assert.Zero(t, created.BestStreak)
	assert.Empty(t, created.CompletedDates)

	got, err := repo.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Drink water", got.Name)
}

func TestMemoryRepo_CreateValidates(t *testing.T) {
	repo := NewMemoryRepo()

	cases := []model.Task{
		{Name: "", Frequency: model.FrequencyDaily},
		{Name: "x", Frequency: "hourly"},
		{Name: "x", Frequency: model.FrequencyWeekly},                       // weekly without a day
		{Name: "x", Frequency: model.FrequencyWeekly, WeeklyDay: intPtr(7)}, // out of range
		{Name: "x", Frequency: model.FrequencyCustom},                       // custom without days
		{Name: "x", Frequency: model.FrequencyCustom, CustomDays: []int{8}},
	}
	for _, tc := range cases {
		_, err := repo.Create(tc)
		assert.ErrorIs(t, err, ErrInvalid)
	}
}

func TestMemoryRepo_PatchDefinition(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.Create(model.Task{Name: "Run", Frequency: model.FrequencyDaily})
	assert.NoError(t, err)

	freq := model.FrequencyWeekly
	got, err := repo.Patch(created.ID, Patch{
		Name:      strPtr("Long run"),
		Frequency: &freq,
		WeeklyDay: intPtr(6),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Long run", got.Name)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)
	assert.Equal(t, 6, *got.WeeklyDay)

	// A patch that leaves the definition invalid is rejected and the stored
	// task keeps its previous shape.
	_, err = repo.Patch(created.ID, Patch{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrInvalid)

	got, err = repo.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Long run", got.Name)
}

func TestMemoryRepo_PutRequiresExisting(t *testing.T) {
	repo := NewMemoryRepo()
	_, err := repo.Put(model.Task{ID: "ghost", Name: "x", Frequency: model.FrequencyDaily})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_Delete(t *testing.T) {
	repo := NewMemoryRepo()
	created, err := repo.Create(model.Task{Name: "Run", Frequency: model.FrequencyDaily})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(created.ID))
	_, err = repo.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
}

func TestMemoryRepo_ListStableOrder(t *testing.T) {
	repo := NewMemoryRepo()
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		_, err := repo.Create(model.Task{Name: n, Frequency: model.FrequencyDaily})
		assert.NoError(t, err)
	}

	first, err := repo.List()
	assert.NoError(t, err)
	second, err := repo.List()
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, len(names))
}
