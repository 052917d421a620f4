// Package warehouse provides the warehouse catalog.
package warehouse

import (
	"context"
	"time"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Warehouse is a physical storage location.
type Warehouse struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements domain.Validatable.
func (w *Warehouse) Validate(ctx context.Context) error {
	if w.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if w.Status == "" {
		w.Status = StatusActive
	}
	if w.Status != StatusActive && w.Status != StatusInactive {
		return apperror.NewValidation("status must be Active or Inactive").
			WithDetail("field", "status").WithDetail("value", w.Status)
	}
	return nil
}

// Service provides warehouse business logic.
type Service struct {
	*domain.CatalogService[*Warehouse]
}

func NewService(repo domain.CatalogRepository[*Warehouse], tx domain.TxRunner) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Warehouse]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "warehouse",
		}),
	}
}
