package sqlite

import (
	"database/sql"
	"errors"

	"disciplineforge/internal/model"
	"disciplineforge/internal/shop"
)

// ShopRepo implements shop.Repo.
type ShopRepo struct {
	db *sql.DB
}

func (s *Store) Shop() *ShopRepo {
	return &ShopRepo{db: s.db}
}

const shopColumns = `id, name, description, icon, cost, category, owned, purchased_at`

func (r *ShopRepo) List() ([]model.ShopItem, error) {
	rows, err := r.db.Query(`SELECT ` + shopColumns + ` FROM shop_items ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.ShopItem{}
	for rows.Next() {
		item, err := scanShopItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ShopRepo) Get(id string) (model.ShopItem, error) {
	row := r.db.QueryRow(`SELECT `+shopColumns+` FROM shop_items WHERE id = ?`, id)
	item, err := scanShopItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShopItem{}, shop.ErrNotFound
	}
	if err != nil {
		return model.ShopItem{}, err
	}
	return item, nil
}

func (r *ShopRepo) Put(item model.ShopItem) error {
	res, err := r.db.Exec(
		`UPDATE shop_items SET name = ?, description = ?, icon = ?, cost = ?, category = ?, owned = ?, purchased_at = ?
		 WHERE id = ?`,
		item.Name, item.Description, item.Icon, item.Cost, string(item.Category),
		boolInt(item.Owned), timePtrString(item.PurchasedAt), item.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shop.ErrNotFound
	}
	return nil
}

func scanShopItem(row rowScanner) (model.ShopItem, error) {
	var (
		item        model.ShopItem
		category    string
		owned       int
		purchasedAt sql.NullString
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Icon, &item.Cost, &category, &owned, &purchasedAt)
	if err != nil {
		return model.ShopItem{}, err
	}
	item.Category = model.ShopCategory(category)
	item.Owned = owned != 0
	item.PurchasedAt, err = parseTimePtr(purchasedAt)
	if err != nil {
		return model.ShopItem{}, err
	}
	return item, nil
}
