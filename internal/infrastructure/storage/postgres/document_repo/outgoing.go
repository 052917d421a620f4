package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/documents"
	"stockroom/internal/domain/documents/outgoing"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// OutgoingRepo persists goods issues.
type OutgoingRepo struct {
	baseDocRepo
	headerSpec queryspec.Spec
	itemSpec   queryspec.Spec
	headerCols []string
}

func NewOutgoingRepo(txm *postgres.TxManager) *OutgoingRepo {
	headerSpec := queryspec.Spec{
		Columns: map[string]string{
			"number":         "o.number",
			"date":           "o.date",
			"customerName":   "c.name",
			"warehouseName":  "w.name",
			"destination":    "o.destination",
			"sourceLocation": "o.source_location",
			"status":         "o.status",
			"totalAmount":    "o.total_amount",
			"notes":          "o.notes",
			"createdAt":      "o.created_at",
		},
		Search:       []string{"o.number", "c.name", "w.name", "o.destination", "o.notes"},
		Dates:        map[string]bool{"date": true, "createdAt": true},
		DefaultOrder: "o.date DESC",
	}

	itemSpec := queryspec.Spec{
		Columns: map[string]string{
			"date":         "o.date",
			"number":       "o.number",
			"productName":  "p.name",
			"partNumber":   "p.part_number",
			"quantity":     "it.quantity",
			"unitPrice":    "it.unit_price",
			"status":       "o.status",
			"customerName": "c.name",
			"destination":  "o.destination",
			"notes":        "it.notes",
		},
		Search:       []string{"o.number", "p.name", "p.part_number", "c.name", "o.destination", "it.notes"},
		Dates:        map[string]bool{"date": true},
		DefaultOrder: "o.date DESC",
	}

	cols := postgres.ExtractDBColumns[outgoing.Outgoing]()
	headerCols := make([]string, 0, len(cols)+2)
	for _, col := range cols {
		headerCols = append(headerCols, "o."+col)
	}
	headerCols = append(headerCols,
		"COALESCE(c.name, '') AS customer_name",
		"COALESCE(w.name, '') AS warehouse_name",
	)

	return &OutgoingRepo{
		baseDocRepo: baseDocRepo{
			txm:          txm,
			table:        "outgoing_transactions",
			itemsTable:   "outgoing_items",
			entityName:   "outgoing transaction",
			numberSeq:    "outgoing_number_seq",
			numberPrefix: "OUT",
		},
		headerSpec: headerSpec,
		itemSpec:   itemSpec,
		headerCols: headerCols,
	}
}

// Create inserts the header and all items.
func (r *OutgoingRepo) Create(ctx context.Context, doc *outgoing.Outgoing) error {
	if err := r.insertHeader(ctx, doc); err != nil {
		return err
	}
	return r.insertItems(ctx, doc.ID, doc.Items)
}

// GetByID loads the header with its items.
func (r *OutgoingRepo) GetByID(ctx context.Context, docID id.ID) (*outgoing.Outgoing, error) {
	doc := &outgoing.Outgoing{}

	sql, args, err := r.Builder().
		Select(postgres.ExtractDBColumns[outgoing.Outgoing]()...).
		From(r.table).
		Where(squirrel.Eq{"id": docID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.entityName, docID.String())
		}
		return nil, fmt.Errorf("get outgoing: %w", err)
	}

	items, err := r.loadItems(ctx, docID)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

// Update rewrites the header and replaces the items.
func (r *OutgoingRepo) Update(ctx context.Context, doc *outgoing.Outgoing) error {
	if err := r.updateHeader(ctx, doc); err != nil {
		return err
	}
	if err := r.deleteItems(ctx, doc.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, doc.ID, doc.Items)
}

// List returns header rows with customer and warehouse names.
func (r *OutgoingRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[outgoing.Row], error) {
	sel := r.Builder().
		Select(r.headerCols...).
		From("outgoing_transactions o").
		LeftJoin("customers c ON c.id = o.customer_id").
		LeftJoin("warehouses w ON w.id = o.warehouse_id")

	return listPage[outgoing.Row](ctx, r.txm, sel, r.headerSpec, q)
}

// ListItemRows returns flattened item lines across documents.
func (r *OutgoingRepo) ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error) {
	cols := make([]string, 0, len(itemCols)+2)
	for _, col := range itemCols {
		cols = append(cols, "it."+col)
	}
	cols = append(cols,
		"COALESCE(p.name, '') AS product_name",
		"COALESCE(p.part_number, '') AS part_number",
	)

	sel := r.Builder().
		Select(cols...).
		From("outgoing_items it").
		Join("outgoing_transactions o ON o.id = it.document_id").
		LeftJoin("products p ON p.id = it.product_id").
		LeftJoin("customers c ON c.id = o.customer_id")

	return listPage[documents.ItemRow](ctx, r.txm, sel, r.itemSpec, q)
}
