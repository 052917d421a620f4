// Package customer provides the customer catalog.
package customer

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

// Customer is a counterparty that goods are shipped to.
type Customer struct {
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
func (c *Customer) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	if c.Status != StatusActive && c.Status != StatusInactive {
		return apperror.NewValidation("status must be Active or Inactive").
			WithDetail("field", "status").WithDetail("value", c.Status)
	}
	return nil
}

// Service provides customer business logic.
type Service struct {
	*domain.CatalogService[*Customer]
}

func NewService(repo domain.CatalogRepository[*Customer], tx domain.TxRunner) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Customer]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "customer",
		}),
	}
}
