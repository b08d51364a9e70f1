package shop

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"disciplineforge/internal/model"
)

type FileRepo struct {
	mu    sync.RWMutex
	path  string
	items map[string]model.ShopItem
	order []string
}

// NewFileRepo loads shop_items.json, seeding the default storefront on
// first run and merging stored ownership onto the current catalog by id.
func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "shop_items.json"),
		items: map[string]model.ShopItem{},
	}

	stored := map[string]model.ShopItem{}
	b, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		var loaded []model.ShopItem
		if err := json.Unmarshal(b, &loaded); err != nil {
			return nil, err
		}
		for _, item := range loaded {
			stored[item.ID] = item
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	for _, item := range Defaults() {
		if prev, ok := stored[item.ID]; ok && prev.Owned {
			item.Owned = true
			item.PurchasedAt = prev.PurchasedAt
		}
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	if err := r.saveLocked(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) saveLocked() error {
	out := make([]model.ShopItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) List() ([]model.ShopItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ShopItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *FileRepo) Get(id string) (model.ShopItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.ShopItem{}, ErrNotFound
	}
	return item, nil
}

func (r *FileRepo) Put(item model.ShopItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[item.ID]
	if !ok {
		return ErrNotFound
	}
	r.items[item.ID] = item
	if err := r.saveLocked(); err != nil {
		r.items[item.ID] = prev
		return err
	}
	return nil
}
