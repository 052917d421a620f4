// Package requests provides product requests with a derived
// fulfillment status.
package requests

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
)

// Fulfillment status values. Derived from quantities, never stored.
const (
	StatusPending   = "Pending"
	StatusPartial   = "Partial"
	StatusFulfilled = "Fulfilled"
)

// Request is a free-text product request. The requested item is not a
// catalog reference on purpose: requests often name goods the shop does
// not stock yet.
type Request struct {
	ID                id.ID           `db:"id" json:"id"`
	RequestedItem     string          `db:"requested_item" json:"requestedItem"`
	RequestedQuantity int             `db:"requested_quantity" json:"requestedQuantity"`
	FulfilledQuantity int             `db:"fulfilled_quantity" json:"fulfilledQuantity"`
	RequestDate       time.Time       `db:"request_date" json:"requestDate"`
	FulfilledDate     *time.Time      `db:"fulfilled_date" json:"fulfilledDate,omitempty"`
	Store             string          `db:"store" json:"store,omitempty"`
	Supplier          string          `db:"supplier" json:"supplier,omitempty"`
	UnitPrice         decimal.Decimal `db:"unit_price" json:"unitPrice"`
	TotalPrice        decimal.Decimal `db:"total_price" json:"totalPrice"`
	Notes             string          `db:"notes" json:"notes,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updatedAt"`
}

// Status derives the fulfillment state from the quantities.
func (r *Request) Status() string {
	switch {
	case r.FulfilledQuantity <= 0:
		return StatusPending
	case r.FulfilledQuantity < r.RequestedQuantity:
		return StatusPartial
	default:
		return StatusFulfilled
	}
}

// Recalculate refreshes the total from unit price and quantity.
func (r *Request) Recalculate() {
	r.TotalPrice = r.UnitPrice.Mul(decimal.NewFromInt(int64(r.RequestedQuantity)))
}

// Validate implements domain.Validatable.
func (r *Request) Validate(ctx context.Context) error {
	if r.RequestedItem == "" {
		return apperror.NewValidation("requestedItem is required").
			WithDetail("field", "requestedItem")
	}
	if r.RequestedQuantity <= 0 {
		return apperror.NewValidation("requestedQuantity must be positive").
			WithDetail("field", "requestedQuantity").WithDetail("value", r.RequestedQuantity)
	}
	if r.FulfilledQuantity < 0 {
		return apperror.NewValidation("fulfilledQuantity cannot be negative").
			WithDetail("field", "fulfilledQuantity").WithDetail("value", r.FulfilledQuantity)
	}
	if r.UnitPrice.IsNegative() {
		return apperror.NewValidation("unitPrice cannot be negative").
			WithDetail("field", "unitPrice").WithDetail("value", r.UnitPrice.String())
	}
	if r.RequestDate.IsZero() {
		r.RequestDate = time.Now().UTC()
	}
	return nil
}
