// Package sqlite persists the whole application state in a single SQLite
// file. It is the alternative to the JSON file repos and implements the same
// per-feature repo interfaces.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"disciplineforge/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access and hands out the per-feature repos.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			frequency TEXT NOT NULL,
			weekly_day INTEGER,
			custom_days TEXT NOT NULL,
			time_reminder TEXT NOT NULL,
			motivational_note TEXT NOT NULL,
			streak INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			completed_dates TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS player_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			level INTEGER NOT NULL,
			xp INTEGER NOT NULL,
			discipline_points INTEGER NOT NULL,
			total_tasks_completed INTEGER NOT NULL,
			current_streak INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			is_premium INTEGER NOT NULL,
			sound_enabled INTEGER NOT NULL,
			has_completed_onboarding INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			requirement INTEGER NOT NULL,
			type TEXT NOT NULL,
			unlocked INTEGER NOT NULL,
			unlocked_at TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS shop_items (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			icon TEXT NOT NULL,
			cost INTEGER NOT NULL,
			category TEXT NOT NULL,
			owned INTEGER NOT NULL,
			purchased_at TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalogs inserts any catalog entries that are not already stored.
// Existing rows keep their unlock and ownership state untouched.
func (s *Store) SeedCatalogs(achievements []model.Achievement, items []model.ShopItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, a := range achievements {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO achievements (id, position, name, description, icon, requirement, type, unlocked, unlocked_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.Name, a.Description, a.Icon, a.Requirement, string(a.Type), boolInt(a.Unlocked), timePtrString(a.UnlockedAt),
		)
		if err != nil {
			return err
		}
	}
	for i, it := range items {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO shop_items (id, position, name, description, icon, cost, category, owned, purchased_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, i, it.Name, it.Description, it.Icon, it.Cost, string(it.Category), boolInt(it.Owned), timePtrString(it.PurchasedAt),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timePtrString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}

func parseTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
