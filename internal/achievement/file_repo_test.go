package achievement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"disciplineforge/internal/model"
)

func TestFileRepo_SeedsCatalogOnFirstRun(t *testing.T) {
	repo, err := NewFileRepo(t.TempDir())
	assert.NoError(t, err)

	list, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, list, len(Defaults()))
	for _, a := range list {
		assert.False(t, a.Unlocked)
		assert.Nil(t, a.UnlockedAt)
	}
}

func TestFileRepo_UnlockStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	assert.NoError(t, err)

	list, err := repo.List()
	assert.NoError(t, err)
	at := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	for i := range list {
		if list[i].ID == "first_task" {
			list[i].Unlocked = true
			list[i].UnlockedAt = &at
		}
	}
	assert.NoError(t, repo.ReplaceAll(list))

	reopened, err := NewFileRepo(dir)
	assert.NoError(t, err)
	got, err := reopened.List()
	assert.NoError(t, err)

	var found *model.Achievement
	for i := range got {
		if got[i].ID == "first_task" {
			found = &got[i]
		}
	}
	if assert.NotNil(t, found) {
		assert.True(t, found.Unlocked)
		assert.NotNil(t, found.UnlockedAt)
		assert.True(t, found.UnlockedAt.Equal(at))
	}
}

func TestFileRepo_DropsEntriesOutsideCatalog(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewFileRepo(dir)
	assert.NoError(t, err)

	// Simulate an old save carrying an achievement the catalog no longer
	// ships: ReplaceAll persists it, but a reopen rebuilds from the catalog.
	list, _ := repo.List()
	list = append(list, model.Achievement{ID: "retired", Name: "Retired", Type: model.AchievementTasks, Requirement: 5})
	assert.NoError(t, repo.ReplaceAll(list))

	reopened, err := NewFileRepo(dir)
	assert.NoError(t, err)
	got, err := reopened.List()
	assert.NoError(t, err)
	assert.Len(t, got, len(Defaults()))
	for _, a := range got {
		assert.NotEqual(t, "retired", a.ID)
	}
}
