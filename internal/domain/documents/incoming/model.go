// Package incoming provides goods-receipt documents that add stock.
package incoming

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/documents"
)

// Incoming is a goods receipt. Posting it (Draft -> Done) increases
// stock of every item's product.
type Incoming struct {
	ID          id.ID            `db:"id" json:"id"`
	Number      string           `db:"number" json:"number"`
	Date        time.Time        `db:"date" json:"date"`
	SupplierID  *id.ID           `db:"supplier_id" json:"supplierId,omitempty"`
	WarehouseID *id.ID           `db:"warehouse_id" json:"warehouseId,omitempty"`
	Notes       string           `db:"notes" json:"notes,omitempty"`
	Status      documents.Status `db:"status" json:"status"`
	TotalAmount decimal.Decimal  `db:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updatedAt"`

	Items []documents.Item `db:"-" json:"items"`
}

// Row is the list projection with the supplier and warehouse resolved.
type Row struct {
	Incoming
	SupplierName  string `db:"supplier_name" json:"supplierName,omitempty"`
	WarehouseName string `db:"warehouse_name" json:"warehouseName,omitempty"`
}

// Recalculate refreshes the stored total from the item lines.
func (d *Incoming) Recalculate() {
	d.TotalAmount = documents.Total(d.Items)
}

// Validate implements domain.Validatable.
func (d *Incoming) Validate(ctx context.Context) error {
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
