package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"disciplineforge/internal/model"
	"disciplineforge/internal/task"
)

// TaskRepo implements task.Repo on top of the store. Definition rules
// (validation, patching, normalization) are the task package's; this type
// only does the row plumbing.
type TaskRepo struct {
	db *sql.DB
}

func (s *Store) Tasks() *TaskRepo {
	return &TaskRepo{db: s.db}
}

const taskColumns = `id, name, frequency, weekly_day, custom_days, time_reminder, motivational_note, streak, best_streak, completed_dates, created_at`

func (r *TaskRepo) Create(t model.Task) (model.Task, error) {
	if err := task.ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.Streak = 0
	t.BestStreak = 0
	t.CompletedDates = []string{}

	if err := r.insert(t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Import inserts a task as-is, keeping its ID, history and timestamps.
// Used by the file-to-sqlite migration.
func (r *TaskRepo) Import(t model.Task) error {
	if err := task.ValidateDefinition(t); err != nil {
		return err
	}
	task.NormalizeTask(&t)
	return r.insert(t)
}

func (r *TaskRepo) Get(id string) (model.Task, error) {
	row := r.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, task.ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepo) List() ([]model.Task, error) {
	rows, err := r.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TaskRepo) Patch(id string, p task.Patch) (model.Task, error) {
	t, err := r.Get(id)
	if err != nil {
		return model.Task{}, err
	}
	task.ApplyPatch(&t, p)
	if err := task.ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}
	if err := r.update(t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepo) Put(t model.Task) (model.Task, error) {
	if _, err := r.Get(t.ID); err != nil {
		return model.Task{}, err
	}
	task.NormalizeTask(&t)
	if err := r.update(t); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) insert(t model.Task) error {
	customDays, completedDates, err := encodeTaskLists(t)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(t.Frequency), weeklyDayValue(t.WeeklyDay), customDays,
		t.TimeReminder, t.MotivationalNote, t.Streak, t.BestStreak, completedDates,
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (r *TaskRepo) update(t model.Task) error {
	customDays, completedDates, err := encodeTaskLists(t)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`UPDATE tasks SET name = ?, frequency = ?, weekly_day = ?, custom_days = ?,
			time_reminder = ?, motivational_note = ?, streak = ?, best_streak = ?, completed_dates = ?
		 WHERE id = ?`,
		t.Name, string(t.Frequency), weeklyDayValue(t.WeeklyDay), customDays,
		t.TimeReminder, t.MotivationalNote, t.Streak, t.BestStreak, completedDates,
		t.ID,
	)
	return err
}

func encodeTaskLists(t model.Task) (customDays, completedDates string, err error) {
	if t.CustomDays == nil {
		t.CustomDays = []int{}
	}
	if t.CompletedDates == nil {
		t.CompletedDates = []string{}
	}
	cd, err := json.Marshal(t.CustomDays)
	if err != nil {
		return "", "", err
	}
	dates, err := json.Marshal(t.CompletedDates)
	if err != nil {
		return "", "", err
	}
	return string(cd), string(dates), nil
}

func weeklyDayValue(d *int) any {
	if d == nil {
		return nil
	}
	return *d
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t              model.Task
		frequency      string
		weeklyDay      sql.NullInt64
		customDays     string
		completedDates string
		createdAt      string
	)
	err := row.Scan(&t.ID, &t.Name, &frequency, &weeklyDay, &customDays,
		&t.TimeReminder, &t.MotivationalNote, &t.Streak, &t.BestStreak, &completedDates, &createdAt)
	if err != nil {
		return model.Task{}, err
	}
	t.Frequency = model.Frequency(frequency)
	if weeklyDay.Valid {
		d := int(weeklyDay.Int64)
		t.WeeklyDay = &d
	}
	if err := json.Unmarshal([]byte(customDays), &t.CustomDays); err != nil {
		return model.Task{}, err
	}
	if err := json.Unmarshal([]byte(completedDates), &t.CompletedDates); err != nil {
		return model.Task{}, err
	}
	t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Task{}, err
	}
	task.NormalizeTask(&t)
	return t, nil
}
