package inmemdb

import (
	"context"

	"github.com/trezcool/darasa/core/inventory"
)

type itemRepository struct {
	db *itemTable
}

var _ inventory.Repository = (*itemRepository)(nil) // interface compliance check

func NewItemRepository(db *DB) inventory.Repository {
	return &itemRepository{db: db.item}
}

func (repo *itemRepository) QueryItems(context.Context) ([]inventory.Item, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append(make([]inventory.Item, 0, len(repo.db.rows)), repo.db.rows...), nil
}

func (repo *itemRepository) GetItem(_ context.Context, id string) (inventory.Item, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, item := range repo.db.rows {
		if item.ID == id {
			return item, nil
		}
	}
	return inventory.Item{}, inventory.ErrNotFound
}

func (repo *itemRepository) UpdateQuantity(_ context.Context, id string, quantity int) (inventory.Item, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.rows {
		if repo.db.rows[i].ID == id {
			repo.db.rows[i].Quantity = quantity
			return repo.db.rows[i], nil
		}
	}
	return inventory.Item{}, inventory.ErrNotFound
}
