package sqlite

import (
	"database/sql"

	"disciplineforge/internal/model"
)

// AchievementRepo implements achievement.Repo. Catalog order is kept in the
// position column so listings stay stable across restarts.
type AchievementRepo struct {
	db *sql.DB
}

func (s *Store) Achievements() *AchievementRepo {
	return &AchievementRepo{db: s.db}
}

func (r *AchievementRepo) List() ([]model.Achievement, error) {
	rows, err := r.db.Query(
		`SELECT id, name, description, icon, requirement, type, unlocked, unlocked_at
		 FROM achievements ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Achievement{}
	for rows.Next() {
		var (
			a          model.Achievement
			typ        string
			unlocked   int
			unlockedAt sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.Requirement, &typ, &unlocked, &unlockedAt); err != nil {
			return nil, err
		}
		a.Type = model.AchievementType(typ)
		a.Unlocked = unlocked != 0
		a.UnlockedAt, err = parseTimePtr(unlockedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AchievementRepo) ReplaceAll(list []model.Achievement) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM achievements`); err != nil {
		return err
	}
	for i, a := range list {
		_, err := tx.Exec(
			`INSERT INTO achievements (id, position, name, description, icon, requirement, type, unlocked, unlocked_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.Name, a.Description, a.Icon, a.Requirement, string(a.Type), boolInt(a.Unlocked), timePtrString(a.UnlockedAt),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
