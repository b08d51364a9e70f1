package ops

import (
	"fmt"

	"disciplineforge/internal/achievement"
	"disciplineforge/internal/player"
	"disciplineforge/internal/shop"
	"disciplineforge/internal/storage/sqlite"
	"disciplineforge/internal/task"
)

// MigrationReport summarizes what a file-to-sqlite migration moved.
type MigrationReport struct {
	Tasks        int
	Achievements int
	ShopItems    int
}

// MigrateToSQLite copies every collection from the JSON file backend at
// dataDir into a sqlite database at sqlitePath. The source files are left
// untouched; the target database should be fresh.
func MigrateToSQLite(dataDir, sqlitePath string) (MigrationReport, error) {
	var report MigrationReport

	taskRepo, err := task.NewFileRepo(dataDir)
	if err != nil {
		return report, fmt.Errorf("open task files: %w", err)
	}
	playerRepo, err := player.NewFileRepo(dataDir)
	if err != nil {
		return report, fmt.Errorf("open stats file: %w", err)
	}
	achievementRepo, err := achievement.NewFileRepo(dataDir)
	if err != nil {
		return report, fmt.Errorf("open achievements file: %w", err)
	}
	shopRepo, err := shop.NewFileRepo(dataDir)
	if err != nil {
		return report, fmt.Errorf("open shop file: %w", err)
	}

	store, err := sqlite.Open(sqlitePath)
	if err != nil {
		return report, fmt.Errorf("open sqlite: %w", err)
	}
	defer store.Close()

	tasks, err := taskRepo.List()
	if err != nil {
		return report, err
	}
	for _, t := range tasks {
		if err := store.Tasks().Import(t); err != nil {
			return report, fmt.Errorf("import task %s: %w", t.ID, err)
		}
	}
	report.Tasks = len(tasks)

	stats, err := playerRepo.Get()
	if err != nil {
		return report, err
	}
	if err := store.Players().Put(stats); err != nil {
		return report, err
	}

	achievements, err := achievementRepo.List()
	if err != nil {
		return report, err
	}
	if err := store.Achievements().ReplaceAll(achievements); err != nil {
		return report, err
	}
	report.Achievements = len(achievements)

	items, err := shopRepo.List()
	if err != nil {
		return report, err
	}
	if err := store.SeedCatalogs(nil, items); err != nil {
		return report, err
	}
	for _, item := range items {
		if err := store.Shop().Put(item); err != nil {
			return report, fmt.Errorf("import shop item %s: %w", item.ID, err)
		}
	}
	report.ShopItems = len(items)

	return report, nil
}
