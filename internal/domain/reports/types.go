// Package reports provides the dashboard ledger that merges incoming
// items, outgoing items and product requests into one view.
package reports

import "time"

// Source id prefixes keep ledger row ids globally unique across the
// three merged tables.
const (
	PrefixIncoming = "in-"
	PrefixOutgoing = "out-"
	PrefixRequest  = "req-"
)

// LedgerRow is the common row shape of the merged stock movement table.
// Date is kept as yyyy-MM-dd text so whole-row search and the default
// sort operate on the serialized form.
type LedgerRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	PartNumber  string `json:"partNumber"`
	ProductName string `json:"productName"`
	Source      string `json:"source"`
	StockIn     int    `json:"stockIn"`
	StockOut    int    `json:"stockOut"`
	Destination string `json:"destination"`
	Stock       int    `json:"stock"`
	Remarks     string `json:"remarks"`
}

// Summary holds the dashboard counters. They cover the whole catalog,
// never the ledger date range.
type Summary struct {
	TotalProducts   int64  `json:"totalProducts"`
	LowStockItems   int64  `json:"lowStockItems"`
	TotalValue      string `json:"totalValue"`
	PendingRequests int64  `json:"pendingRequests"`
}

// Query bounds and shapes the dashboard response. From/To bound the
// ledger rows inclusively; nil means unbounded.
type Query struct {
	From      *time.Time
	To        *time.Time
	Search    string
	SortField string
	SortOrder string
	Page      int
	Limit     int
}

// Dashboard is the aggregated response.
type Dashboard struct {
	Summary Summary     `json:"summary"`
	Rows    []LedgerRow `json:"rows"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}
