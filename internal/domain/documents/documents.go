// Package documents holds types shared by the stock transaction
// documents (incoming and outgoing).
package documents

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/catalogs/product"
)

// Status of a stock transaction document.
type Status string

const (
	// StatusDraft documents are editable and have no stock effect.
	StatusDraft Status = "Draft"

	// StatusDone documents have applied their stock effect and are frozen.
	StatusDone Status = "Done"
)

// Valid reports whether s is a recognized document status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusDone
}

// Item is one product line of a stock transaction.
type Item struct {
	ID         id.ID           `db:"id" json:"id"`
	DocumentID id.ID           `db:"document_id" json:"documentId"`
	ProductID  id.ID           `db:"product_id" json:"productId"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Notes      string          `db:"notes" json:"notes,omitempty"`
}

// Amount returns quantity * unit price for the line.
func (i Item) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemRow is the list projection of an item with the product resolved.
type ItemRow struct {
	Item
	ProductName string `db:"product_name" json:"productName"`
	PartNumber  string `db:"part_number" json:"partNumber,omitempty"`
}

// ValidateItems checks line-level invariants.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return apperror.NewValidation("document must have at least one item")
	}
	for i, item := range items {
		if id.IsNil(item.ProductID) {
			return apperror.NewValidation("item productId is required").
				WithDetail("item", i)
		}
		if item.Quantity <= 0 {
			return apperror.NewValidation("item quantity must be positive").
				WithDetail("item", i).WithDetail("quantity", item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return apperror.NewValidation("item unitPrice cannot be negative").
				WithDetail("item", i).WithDetail("unitPrice", item.UnitPrice.String())
		}
	}
	return nil
}

// Total sums line amounts.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount())
	}
	return total
}

// StockKeeper is the slice of the product repository that document
// posting needs. All calls run inside the posting transaction.
type StockKeeper interface {
	GetForUpdate(ctx context.Context, productID id.ID) (*product.Product, error)
	AdjustStock(ctx context.Context, productID id.ID, delta int) error
}

// ApplyStock moves stock for every item by sign*quantity. Negative
// deltas are refused when they would drive stock below zero, so a Done
// incoming document cannot be deleted once its goods were shipped out.
func ApplyStock(ctx context.Context, stock StockKeeper, items []Item, sign int) error {
	for _, item := range items {
		p, err := stock.GetForUpdate(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		delta := sign * item.Quantity
		if p.Stock+delta < 0 {
			return apperror.NewInsufficientStock(p.ID.String(), -delta, p.Stock)
		}
		if err := stock.AdjustStock(ctx, item.ProductID, delta); err != nil {
			return fmt.Errorf("adjust stock for product %s: %w", item.ProductID, err)
		}
	}
	return nil
}
