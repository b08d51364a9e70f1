package task

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"disciplineforge/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{tasks: map[string]model.Task{}}
}

func (r *MemoryRepo) Create(t model.Task) (model.Task, error) {
	if err := ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Server-managed fields are assigned here regardless of input.
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.Streak = 0
	t.BestStreak = 0
	t.CompletedDates = []string{}

	r.tasks[t.ID] = t
	return t.Clone(), nil
}

func (r *MemoryRepo) Get(id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}
	NormalizeTask(&t)
	return t.Clone(), nil
}

func (r *MemoryRepo) List() ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		NormalizeTask(&t)
		out = append(out, t.Clone())
	}
	sortTasks(out)
	return out, nil
}

func (r *MemoryRepo) Patch(id string, p Patch) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}

	ApplyPatch(&t, p)
	if err := ValidateDefinition(t); err != nil {
		return model.Task{}, err
	}

	r.tasks[id] = t
	return t.Clone(), nil
}

func (r *MemoryRepo) Put(t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[t.ID]; !ok {
		return model.Task{}, ErrNotFound
	}
	NormalizeTask(&t)
	r.tasks[t.ID] = t.Clone()
	return t, nil
}

func (r *MemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

// sortTasks gives List a stable creation order; map iteration alone would
// shuffle the dashboard on every refresh.
func sortTasks(out []model.Task) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
}
