// Package report_repo reads the dashboard ledger sources.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockroom/internal/domain/reports"
	"stockroom/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository over PostgreSQL.
type ReportRepo struct {
	txm *postgres.TxManager
}

func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{txm: txm}
}

func (r *ReportRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// dateRange bounds a select on the given date column, inclusive.
func dateRange(sel squirrel.SelectBuilder, col string, from, to *time.Time) squirrel.SelectBuilder {
	if from != nil {
		sel = sel.Where(squirrel.GtOrEq{col: *from})
	}
	if to != nil {
		sel = sel.Where(squirrel.LtOrEq{col: *to})
	}
	return sel
}

func (r *ReportRepo) selectRows(ctx context.Context, sel squirrel.SelectBuilder, what string) ([]reports.LedgerRow, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", what, err)
	}

	var rows []reports.LedgerRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", what, err)
	}
	return rows, nil
}

// IncomingRows maps incoming items into the common ledger shape. The
// supplier shows as the source, the warehouse as the destination.
func (r *ReportRepo) IncomingRows(ctx context.Context, from, to *time.Time) ([]reports.LedgerRow, error) {
	sel := r.builder().
		Select(
			"it.id::text AS id",
			"to_char(i.date, 'YYYY-MM-DD') AS date",
			"COALESCE(p.part_number, '') AS part_number",
			"COALESCE(p.name, '') AS product_name",
			"COALESCE(NULLIF(s.name, ''), '-') AS source",
			"it.quantity AS stock_in",
			"0 AS stock_out",
			"COALESCE(NULLIF(w.name, ''), '-') AS destination",
			"COALESCE(p.stock, 0) AS stock",
			"COALESCE(it.notes, '') AS remarks",
		).
		From("incoming_items it").
		Join("incoming_transactions i ON i.id = it.document_id").
		LeftJoin("products p ON p.id = it.product_id").
		LeftJoin("suppliers s ON s.id = i.supplier_id").
		LeftJoin("warehouses w ON w.id = i.warehouse_id")

	return r.selectRows(ctx, dateRange(sel, "i.date", from, to), "incoming rows")
}

// OutgoingRows maps outgoing items into the common ledger shape. The
// free-text source location and destination serve as fallbacks when no
// warehouse or customer is linked.
func (r *ReportRepo) OutgoingRows(ctx context.Context, from, to *time.Time) ([]reports.LedgerRow, error) {
	sel := r.builder().
		Select(
			"it.id::text AS id",
			"to_char(o.date, 'YYYY-MM-DD') AS date",
			"COALESCE(p.part_number, '') AS part_number",
			"COALESCE(p.name, '') AS product_name",
			"COALESCE(NULLIF(w.name, ''), NULLIF(o.source_location, ''), '-') AS source",
			"0 AS stock_in",
			"it.quantity AS stock_out",
			"COALESCE(NULLIF(c.name, ''), NULLIF(o.destination, ''), '-') AS destination",
			"COALESCE(p.stock, 0) AS stock",
			"COALESCE(it.notes, '') AS remarks",
		).
		From("outgoing_items it").
		Join("outgoing_transactions o ON o.id = it.document_id").
		LeftJoin("products p ON p.id = it.product_id").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("warehouses w ON w.id = o.warehouse_id")

	return r.selectRows(ctx, dateRange(sel, "o.date", from, to), "outgoing rows")
}

// RequestRows maps product requests into the common ledger shape: the
// fulfilled quantity counts as stock in, the requested quantity shows
// in the stock column.
func (r *ReportRepo) RequestRows(ctx context.Context, from, to *time.Time) ([]reports.LedgerRow, error) {
	sel := r.builder().
		Select(
			"id::text AS id",
			"to_char(request_date, 'YYYY-MM-DD') AS date",
			"'' AS part_number",
			"requested_item AS product_name",
			"COALESCE(NULLIF(supplier, ''), '-') AS source",
			"fulfilled_quantity AS stock_in",
			"0 AS stock_out",
			"COALESCE(NULLIF(store, ''), '-') AS destination",
			"requested_quantity AS stock",
			"COALESCE(notes, '') AS remarks",
		).
		From("product_requests")

	return r.selectRows(ctx, dateRange(sel, "request_date", from, to), "request rows")
}

// ProductStats aggregates over the entire catalog.
func (r *ReportRepo) ProductStats(ctx context.Context) (reports.ProductStats, error) {
	var stats reports.ProductStats
	err := r.txm.GetQuerier(ctx).QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE reorder_level > 0 AND stock < reorder_level),
			COALESCE(SUM(stock * unit_price), 0)
		FROM products
	`).Scan(&stats.Total, &stats.LowStock, &stats.TotalValue)
	if err != nil {
		return stats, fmt.Errorf("product stats: %w", err)
	}
	return stats, nil
}

// PendingRequests counts requests with nothing fulfilled yet.
func (r *ReportRepo) PendingRequests(ctx context.Context) (int64, error) {
	var n int64
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT COUNT(*) FROM product_requests WHERE fulfilled_quantity <= 0").
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending requests: %w", err)
	}
	return n, nil
}
