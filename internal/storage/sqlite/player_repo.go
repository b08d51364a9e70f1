package sqlite

import (
	"database/sql"
	"errors"

	"disciplineforge/internal/model"
)

// PlayerRepo implements player.Repo as a single fixed row; a missing row
// reads as the default stats, same as a missing stats file.
type PlayerRepo struct {
	db *sql.DB
}

func (s *Store) Players() *PlayerRepo {
	return &PlayerRepo{db: s.db}
}

func (r *PlayerRepo) Get() (model.UserStats, error) {
	row := r.db.QueryRow(
		`SELECT level, xp, discipline_points, total_tasks_completed, current_streak, best_streak,
			is_premium, sound_enabled, has_completed_onboarding
		 FROM player_stats WHERE id = 1`)

	var s model.UserStats
	var premium, sound, onboarding int
	err := row.Scan(&s.Level, &s.XP, &s.DisciplinePoints, &s.TotalTasksCompleted,
		&s.CurrentStreak, &s.BestStreak, &premium, &sound, &onboarding)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultUserStats(), nil
	}
	if err != nil {
		return model.UserStats{}, err
	}
	s.IsPremium = premium != 0
	s.SoundEnabled = sound != 0
	s.HasCompletedOnboarding = onboarding != 0
	return s, nil
}

func (r *PlayerRepo) Put(s model.UserStats) error {
	_, err := r.db.Exec(
		`INSERT INTO player_stats (id, level, xp, discipline_points, total_tasks_completed, current_streak, best_streak, is_premium, sound_enabled, has_completed_onboarding)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			level = excluded.level,
			xp = excluded.xp,
			discipline_points = excluded.discipline_points,
			total_tasks_completed = excluded.total_tasks_completed,
			current_streak = excluded.current_streak,
			best_streak = excluded.best_streak,
			is_premium = excluded.is_premium,
			sound_enabled = excluded.sound_enabled,
			has_completed_onboarding = excluded.has_completed_onboarding`,
		s.Level, s.XP, s.DisciplinePoints, s.TotalTasksCompleted, s.CurrentStreak, s.BestStreak,
		boolInt(s.IsPremium), boolInt(s.SoundEnabled), boolInt(s.HasCompletedOnboarding),
	)
	return err
}
