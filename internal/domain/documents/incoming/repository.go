package incoming

import (
	"context"

	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/documents"
)

// Repository persists incoming documents with their items.
type Repository interface {
	// Create inserts the header and all items.
	Create(ctx context.Context, doc *Incoming) error

	// GetByID loads the header and its items.
	GetByID(ctx context.Context, docID id.ID) (*Incoming, error)

	// Update rewrites the header and replaces the items.
	Update(ctx context.Context, doc *Incoming) error

	Delete(ctx context.Context, docID id.ID) error
	UpdateStatus(ctx context.Context, docID id.ID, status documents.Status) error

	// List returns header rows with supplier and warehouse names.
	List(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error)

	// ListItemRows returns flattened item lines across documents.
	ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error)

	// NextNumber allocates the next sequential document number.
	NextNumber(ctx context.Context) (string, error)
}
