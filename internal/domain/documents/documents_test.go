package documents

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/catalogs/product"
)

type fakeStock struct {
	levels  map[id.ID]int
	applied []int
}

func (f *fakeStock) GetForUpdate(ctx context.Context, productID id.ID) (*product.Product, error) {
	stock, ok := f.levels[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return &product.Product{ID: productID, Stock: stock}, nil
}

func (f *fakeStock) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	f.levels[productID] += delta
	f.applied = append(f.applied, delta)
	return nil
}

func TestApplyStock(t *testing.T) {
	t.Run("incoming adds", func(t *testing.T) {
		productID := id.New()
		stock := &fakeStock{levels: map[id.ID]int{productID: 10}}

		err := ApplyStock(context.Background(), stock, []Item{
			{ProductID: productID, Quantity: 5},
		}, +1)

		require.NoError(t, err)
		assert.Equal(t, 15, stock.levels[productID])
	})

	t.Run("outgoing subtracts", func(t *testing.T) {
		productID := id.New()
		stock := &fakeStock{levels: map[id.ID]int{productID: 10}}

		err := ApplyStock(context.Background(), stock, []Item{
			{ProductID: productID, Quantity: 10},
		}, -1)

		require.NoError(t, err)
		assert.Equal(t, 0, stock.levels[productID])
	})

	t.Run("refuses negative stock", func(t *testing.T) {
		productID := id.New()
		stock := &fakeStock{levels: map[id.ID]int{productID: 3}}

		err := ApplyStock(context.Background(), stock, []Item{
			{ProductID: productID, Quantity: 5},
		}, -1)

		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
		assert.Equal(t, 3, stock.levels[productID], "no partial adjustment for the failing line")
	})

	t.Run("stops on first shortage", func(t *testing.T) {
		okID, shortID := id.New(), id.New()
		stock := &fakeStock{levels: map[id.ID]int{okID: 10, shortID: 1}}

		err := ApplyStock(context.Background(), stock, []Item{
			{ProductID: okID, Quantity: 2},
			{ProductID: shortID, Quantity: 2},
		}, -1)

		require.Error(t, err)
		// The first line was already applied inside the transaction;
		// the caller's rollback undoes it.
		assert.Equal(t, []int{-2}, stock.applied)
	})
}

func TestValidateItems(t *testing.T) {
	valid := Item{ProductID: id.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(3)}

	assert.NoError(t, ValidateItems([]Item{valid}))
	assert.Error(t, ValidateItems(nil))
	assert.Error(t, ValidateItems([]Item{{Quantity: 1}}))
	assert.Error(t, ValidateItems([]Item{{ProductID: id.New(), Quantity: 0}}))
	assert.Error(t, ValidateItems([]Item{{ProductID: id.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}))
}

func TestTotal(t *testing.T) {
	total := Total([]Item{
		{Quantity: 2, UnitPrice: decimal.NewFromFloat(1.5)},
		{Quantity: 1, UnitPrice: decimal.NewFromInt(4)},
	})
	assert.True(t, total.Equal(decimal.NewFromInt(7)), "got %s", total)
}
