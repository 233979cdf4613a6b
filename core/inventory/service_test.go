package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/darasa/core/inventory"
	inmemdb "github.com/trezcool/darasa/storage/database/inmem"
)

func TestService_quantities(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(inmemdb.NewItemRepository(inmemdb.NewSeeded()))

	tests := []struct {
		name    string
		op      func() (inventory.Item, error)
		wantQty int
		wantErr error
	}{
		{name: "set", op: func() (inventory.Item, error) { return svc.SetQuantity(ctx, "I1", 7) }, wantQty: 7},
		{name: "set negative", op: func() (inventory.Item, error) { return svc.SetQuantity(ctx, "I1", -5) }, wantQty: 0},
		{name: "increment", op: func() (inventory.Item, error) { return svc.Adjust(ctx, " I1 ", 3) }, wantQty: 3},
		{name: "decrement past zero", op: func() (inventory.Item, error) { return svc.Adjust(ctx, "I1", -10) }, wantQty: 0},
		{name: "unknown item", op: func() (inventory.Item, error) { return svc.Adjust(ctx, "I99", 1) }, wantErr: inventory.ErrNotFound},
		{name: "set unknown item", op: func() (inventory.Item, error) { return svc.SetQuantity(ctx, "I99", 1) }, wantErr: inventory.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := tt.op()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, item.Quantity)

			stored, err := svc.GetByID(ctx, item.ID)
			require.NoError(t, err)
			assert.Equal(t, item, stored)
		})
	}
}

func TestService_Adjust_concurrent(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(inmemdb.NewItemRepository(inmemdb.NewSeeded()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Adjust(ctx, "I4", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	item, err := svc.GetByID(ctx, "I4")
	require.NoError(t, err)
	assert.Equal(t, 25, item.Quantity)
}
