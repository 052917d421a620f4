// Package product provides the product catalog and stock bookkeeping.
package product

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Product is a stock-keeping unit. Stock holds the current on-hand
// quantity and is mutated only by posted transactions.
type Product struct {
	ID           id.ID           `db:"id" json:"id"`
	CardNumber   string          `db:"card_number" json:"cardNumber"`
	Name         string          `db:"name" json:"name"`
	PartNumber   string          `db:"part_number" json:"partNumber,omitempty"`
	Description  string          `db:"description" json:"description,omitempty"`
	Stock        int             `db:"stock" json:"stock"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unitPrice"`
	ReorderLevel int             `db:"reorder_level" json:"reorderLevel"`
	Status       string          `db:"status" json:"status"`
	CategoryID   *id.ID          `db:"category_id" json:"categoryId,omitempty"`
	SupplierID   *id.ID          `db:"supplier_id" json:"supplierId,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}

// Row is the list projection of a product with resolved reference names.
type Row struct {
	Product
	CategoryName string `db:"category_name" json:"categoryName,omitempty"`
	SupplierName string `db:"supplier_name" json:"supplierName,omitempty"`
}

// LowStock reports whether on-hand quantity fell below the reorder level.
func (p *Product) LowStock() bool {
	return p.ReorderLevel > 0 && p.Stock < p.ReorderLevel
}

// Validate implements domain.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if p.Stock < 0 {
		return apperror.NewValidation("stock cannot be negative").
			WithDetail("field", "stock").WithDetail("value", p.Stock)
	}
	if p.UnitPrice.IsNegative() {
		return apperror.NewValidation("unitPrice cannot be negative").
			WithDetail("field", "unitPrice").WithDetail("value", p.UnitPrice.String())
	}
	if p.ReorderLevel < 0 {
		return apperror.NewValidation("reorderLevel cannot be negative").
			WithDetail("field", "reorderLevel").WithDetail("value", p.ReorderLevel)
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.Status != StatusActive && p.Status != StatusInactive {
		return apperror.NewValidation("status must be Active or Inactive").
			WithDetail("field", "status").WithDetail("value", p.Status)
	}
	return nil
}
