package player

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"disciplineforge/internal/model"
)

// FileRepo keeps the stats record in stats.json. A missing file bootstraps
// the default record (level 1, sound on), matching a fresh install.
type FileRepo struct {
	mu    sync.RWMutex
	path  string
	stats model.UserStats
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "stats.json"),
		stats: model.DefaultUserStats(),
	}

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(b, &r.stats); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) Get() (model.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}

func (r *FileRepo) Put(s model.UserStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return err
	}
	r.stats = s
	return nil
}
