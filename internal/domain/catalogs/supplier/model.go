// Package supplier provides the supplier catalog.
package supplier

import (
	"context"
	"time"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

// Status values for a supplier.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Supplier is a counterparty that goods are purchased from.
type Supplier struct {
	ID            id.ID     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Phone         string    `db:"phone" json:"phone,omitempty"`
	Email         string    `db:"email" json:"email,omitempty"`
	Address       string    `db:"address" json:"address,omitempty"`
	ContactPerson string    `db:"contact_person" json:"contactPerson,omitempty"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate implements domain.Validatable.
func (s *Supplier) Validate(ctx context.Context) error {
	if s.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.Status != StatusActive && s.Status != StatusInactive {
		return apperror.NewValidation("status must be Active or Inactive").
			WithDetail("field", "status").WithDetail("value", s.Status)
	}
	return nil
}

// Service provides supplier business logic.
type Service struct {
	*domain.CatalogService[*Supplier]
}

func NewService(repo domain.CatalogRepository[*Supplier], tx domain.TxRunner) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Supplier]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "supplier",
		}),
	}
}
