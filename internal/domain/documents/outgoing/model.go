// Package outgoing provides goods-issue documents that remove stock.
package outgoing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/documents"
)

// Outgoing is a goods issue. Posting it (Draft -> Done) decreases stock
// of every item's product; posting fails when stock is insufficient.
type Outgoing struct {
	ID             id.ID            `db:"id" json:"id"`
	Number         string           `db:"number" json:"number"`
	Date           time.Time        `db:"date" json:"date"`
	CustomerID     *id.ID           `db:"customer_id" json:"customerId,omitempty"`
	WarehouseID    *id.ID           `db:"warehouse_id" json:"warehouseId,omitempty"`
	Destination    string           `db:"destination" json:"destination,omitempty"`
	SourceLocation string           `db:"source_location" json:"sourceLocation,omitempty"`
	Notes          string           `db:"notes" json:"notes,omitempty"`
	Status         documents.Status `db:"status" json:"status"`
	TotalAmount    decimal.Decimal  `db:"total_amount" json:"totalAmount"`
	CreatedAt      time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updatedAt"`

	Items []documents.Item `db:"-" json:"items"`
}

// Row is the list projection with the customer and warehouse resolved.
type Row struct {
	Outgoing
	CustomerName  string `db:"customer_name" json:"customerName,omitempty"`
	WarehouseName string `db:"warehouse_name" json:"warehouseName,omitempty"`
}

// Recalculate refreshes the stored total from the item lines.
func (d *Outgoing) Recalculate() {
	d.TotalAmount = documents.Total(d.Items)
}

// Validate implements domain.Validatable.
func (d *Outgoing) Validate(ctx context.Context) error {
	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").WithDetail("field", "date")
	}
	if d.Status == "" {
		d.Status = documents.StatusDraft
	}
	if !d.Status.Valid() {
		return apperror.NewValidation("status must be Draft or Done").
			WithDetail("field", "status").WithDetail("value", string(d.Status))
	}
	return documents.ValidateItems(d.Items)
}
