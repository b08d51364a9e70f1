// Package player owns the single aggregate UserStats record.
package player

import (
	"sync"

	"disciplineforge/internal/model"
)

// Repo is the stats persistence boundary: one record, get/put.
type Repo interface {
	Get() (model.UserStats, error)
	Put(model.UserStats) error
}

type MemoryRepo struct {
	mu    sync.RWMutex
	stats model.UserStats
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{stats: model.DefaultUserStats()}
}

func (r *MemoryRepo) Get() (model.UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}

func (r *MemoryRepo) Put(s model.UserStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = s
	return nil
}
