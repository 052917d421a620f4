package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStats are the catalog-wide aggregates behind the summary.
type ProductStats struct {
	Total      int64
	LowStock   int64
	TotalValue decimal.Decimal
}

// Repository reads the three ledger sources and the summary aggregates.
// Source rows carry the raw entity id; the service adds the prefixes.
type Repository interface {
	// IncomingRows returns one row per posted incoming item within the
	// inclusive date range.
	IncomingRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error)

	// OutgoingRows returns one row per posted outgoing item within the
	// inclusive date range.
	OutgoingRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error)

	// RequestRows returns one row per product request within the
	// inclusive date range.
	RequestRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error)

	// ProductStats aggregates over the entire catalog.
	ProductStats(ctx context.Context) (ProductStats, error)

	// PendingRequests counts requests with zero fulfilled quantity.
	PendingRequests(ctx context.Context) (int64, error)
}
