package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/inventory"
)

type itemRepository struct {
	db *sqlx.DB
}

var _ inventory.Repository = (*itemRepository)(nil) // interface compliance check

func NewItemRepository(db *sqlx.DB) inventory.Repository {
	return &itemRepository{db: db}
}

func (repo *itemRepository) QueryItems(ctx context.Context) ([]inventory.Item, error) {
	items := make([]inventory.Item, 0)
	if err := repo.db.SelectContext(ctx, &items, "SELECT id, name, quantity FROM item ORDER BY seq"); err != nil {
		return nil, errors.Wrap(err, "querying items")
	}
	return items, nil
}

func (repo *itemRepository) GetItem(ctx context.Context, id string) (inventory.Item, error) {
	var item inventory.Item
	if err := repo.db.GetContext(ctx, &item, "SELECT id, name, quantity FROM item WHERE id = $1", id); err != nil {
		return inventory.Item{}, trapNoRowsErr(err, inventory.ErrNotFound, "getting item")
	}
	return item, nil
}

func (repo *itemRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (inventory.Item, error) {
	var item inventory.Item
	q := "UPDATE item SET quantity = $1 WHERE id = $2 RETURNING id, name, quantity"
	if err := repo.db.GetContext(ctx, &item, q, quantity, id); err != nil {
		return inventory.Item{}, trapNoRowsErr(err, inventory.ErrNotFound, "updating item quantity")
	}
	return item, nil
}
