// Package request_repo provides PostgreSQL persistence for product
// requests.
package request_repo

import (
	"context"
	"fmt"

	"stockroom/internal/domain/requests"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/catalog_repo"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// RequestRepo persists product requests. Fulfillment status is derived
// from quantities at read time and never stored.
type RequestRepo struct {
	*catalog_repo.BaseCatalogRepo[*requests.Request]
}

func NewRequestRepo(txm *postgres.TxManager) *RequestRepo {
	spec := queryspec.Spec{
		Columns: map[string]string{
			"requestedItem":     "requested_item",
			"requestedQuantity": "requested_quantity",
			"fulfilledQuantity": "fulfilled_quantity",
			"requestDate":       "request_date",
			"fulfilledDate":     "fulfilled_date",
			"store":             "store",
			"supplier":          "supplier",
			"unitPrice":         "unit_price",
			"totalPrice":        "total_price",
			"notes":             "notes",
			"createdAt":         "created_at",
		},
		Search:       []string{"requested_item", "store", "supplier", "notes"},
		Dates:        map[string]bool{"requestDate": true, "fulfilledDate": true, "createdAt": true},
		DefaultOrder: "request_date DESC",
	}

	return &RequestRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(txm, "product_requests", "request", spec,
			func() *requests.Request { return &requests.Request{} }),
	}
}

// CountPending counts requests with nothing fulfilled yet.
func (r *RequestRepo) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.Querier(ctx).
		QueryRow(ctx, "SELECT COUNT(*) FROM product_requests WHERE fulfilled_quantity <= 0").
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return n, nil
}
