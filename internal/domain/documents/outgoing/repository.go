package outgoing

import (
	"context"

	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/documents"
)

// Repository persists outgoing documents with their items.
type Repository interface {
	Create(ctx context.Context, doc *Outgoing) error
	GetByID(ctx context.Context, docID id.ID) (*Outgoing, error)
	Update(ctx context.Context, doc *Outgoing) error
	Delete(ctx context.Context, docID id.ID) error
	UpdateStatus(ctx context.Context, docID id.ID, status documents.Status) error

	// List returns header rows with customer and warehouse names.
	List(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error)

	// ListItemRows returns flattened item lines across documents.
	ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error)

	NextNumber(ctx context.Context) (string, error)
}
