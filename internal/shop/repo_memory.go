package shop

import (
	"sync"

	"disciplineforge/internal/model"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]model.ShopItem
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	r := &MemoryRepo{items: map[string]model.ShopItem{}}
	for _, item := range Defaults() {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *MemoryRepo) List() ([]model.ShopItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ShopItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *MemoryRepo) Get(id string) (model.ShopItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.ShopItem{}, ErrNotFound
	}
	return item, nil
}

func (r *MemoryRepo) Put(item model.ShopItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}
