package inventory

import (
	"context"
	"errors"
	"sync"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound = errors.New("item not found")
)

type (
	Repository interface {
		QueryItems(ctx context.Context) ([]Item, error)
		GetItem(ctx context.Context, id string) (Item, error)
		UpdateQuantity(ctx context.Context, id string, quantity int) (Item, error)
	}

	Service struct {
		repo Repository
		mu   sync.Mutex // serializes read-modify-write adjustments
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Item, error) {
	return svc.repo.QueryItems(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Item, error) {
	return svc.repo.GetItem(ctx, core.CleanString(id))
}

// SetQuantity sets the quantity of an item. Negative quantities are stored as 0.
func (svc *Service) SetQuantity(ctx context.Context, id string, quantity int) (Item, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.repo.UpdateQuantity(ctx, core.CleanString(id), clamp(quantity))
}

// Adjust adds delta to the quantity of an item, without going below 0.
func (svc *Service) Adjust(ctx context.Context, id string, delta int) (Item, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	item, err := svc.repo.GetItem(ctx, core.CleanString(id))
	if err != nil {
		return Item{}, err
	}
	return svc.repo.UpdateQuantity(ctx, item.ID, clamp(item.Quantity+delta))
}
