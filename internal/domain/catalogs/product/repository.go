package product

import (
	"context"

	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

// Repository extends catalog CRUD with stock operations.
type Repository interface {
	domain.CatalogRepository[*Product]

	// ListRows returns the joined list projection with category and
	// supplier names resolved.
	ListRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error)

	// GetForUpdate loads a product with a row lock. Must run inside a
	// transaction; used by transaction posting.
	GetForUpdate(ctx context.Context, productID id.ID) (*Product, error)

	// AdjustStock applies a signed delta to on-hand stock.
	AdjustStock(ctx context.Context, productID id.ID, delta int) error

	// BulkCreate inserts many products in one statement and returns the
	// number of rows written.
	BulkCreate(ctx context.Context, products []*Product) (int64, error)

	// CountByCategory reports how many products reference the category.
	CountByCategory(ctx context.Context, categoryID id.ID) (int64, error)

	// NextCardNumber allocates the next sequential card number.
	NextCardNumber(ctx context.Context) (string, error)
}
