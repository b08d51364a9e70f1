package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"disciplineforge/internal/model"
)

type fileState struct {
	Tasks map[string]model.Task `json:"tasks"`
}

// FileRepo persists the task collection as a single JSON file under the data
// dir, rewritten on every mutation. Plenty for a single user's habit list.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    fileState
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "tasks.json"),
		s:    fileState{Tasks: map[string]model.Task{}},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded fileState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.Tasks == nil {
		loaded.Tasks = map[string]model.Task{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Create(t model.Task) (model.Task, error) {
	if err := ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.Streak = 0
	t.BestStreak = 0
	t.CompletedDates = []string{}

	r.s.Tasks[t.ID] = t
	if err := r.saveLocked(); err != nil {
		delete(r.s.Tasks, t.ID)
		return model.Task{}, err
	}
	return t.Clone(), nil
}

func (r *FileRepo) Get(id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.s.Tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	NormalizeTask(&t)
	return t.Clone(), nil
}

func (r *FileRepo) List() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.s.Tasks))
	for _, t := range r.s.Tasks {
		NormalizeTask(&t)
		out = append(out, t.Clone())
	}
	sortTasks(out)
	return out, nil
}

func (r *FileRepo) Patch(id string, p Patch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.s.Tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}

	prev := t
	ApplyPatch(&t, p)
	if err := ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}

	r.s.Tasks[id] = t
	if err := r.saveLocked(); err != nil {
		r.s.Tasks[id] = prev
		return model.Task{}, err
	}
	return t.Clone(), nil
}

func (r *FileRepo) Put(t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.s.Tasks[t.ID]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	NormalizeTask(&t)
	r.s.Tasks[t.ID] = t.Clone()
	if err := r.saveLocked(); err != nil {
		r.s.Tasks[t.ID] = prev
		return model.Task{}, err
	}
	return t, nil
}

func (r *FileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.s.Tasks[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.s.Tasks, id)
	if err := r.saveLocked(); err != nil {
		r.s.Tasks[id] = prev
		return err
	}
	return nil
}
