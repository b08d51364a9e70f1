package achievement

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"disciplineforge/internal/model"
)

type FileRepo struct {
	mu   sync.RWMutex
	path string
	list []model.Achievement
}

// NewFileRepo loads achievements.json, seeding the default catalog on first
// run. Stored unlock state is merged onto the current catalog by id, so new
// catalog entries appear locked and removed ones drop out.
func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{path: filepath.Join(dataDir, "achievements.json")}

	stored := map[string]model.Achievement{}
	b, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		var loaded []model.Achievement
		if err := json.Unmarshal(b, &loaded); err != nil {
			return nil, err
		}
		for _, a := range loaded {
			stored[a.ID] = a
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	r.list = Defaults()
	for i := range r.list {
		if prev, ok := stored[r.list[i].ID]; ok && prev.Unlocked {
			r.list[i].Unlocked = true
			r.list[i].UnlockedAt = prev.UnlockedAt
		}
	}
	if err := r.saveLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) List() ([]model.Achievement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Achievement, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *FileRepo) ReplaceAll(list []model.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.list
	r.list = make([]model.Achievement, len(list))
	copy(r.list, list)
	if err := r.saveLocked(); err != nil {
		r.list = prev
		return err
	}
	return nil
}
