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
	"stockroom/internal/domain/documents/incoming"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// IncomingRepo persists goods receipts.
type IncomingRepo struct {
	baseDocRepo
	headerSpec queryspec.Spec
	itemSpec   queryspec.Spec
	headerCols []string
}

func NewIncomingRepo(txm *postgres.TxManager) *IncomingRepo {
	headerSpec := queryspec.Spec{
		Columns: map[string]string{
			"number":        "i.number",
			"date":          "i.date",
			"supplierName":  "s.name",
			"warehouseName": "w.name",
			"status":        "i.status",
			"totalAmount":   "i.total_amount",
			"notes":         "i.notes",
			"createdAt":     "i.created_at",
		},
		Search:       []string{"i.number", "s.name", "w.name", "i.notes"},
		Dates:        map[string]bool{"date": true, "createdAt": true},
		DefaultOrder: "i.date DESC",
	}

	itemSpec := queryspec.Spec{
		Columns: map[string]string{
			"date":         "i.date",
			"number":       "i.number",
			"productName":  "p.name",
			"partNumber":   "p.part_number",
			"quantity":     "it.quantity",
			"unitPrice":    "it.unit_price",
			"status":       "i.status",
			"supplierName": "s.name",
			"notes":        "it.notes",
		},
		Search:       []string{"i.number", "p.name", "p.part_number", "s.name", "it.notes"},
		Dates:        map[string]bool{"date": true},
		DefaultOrder: "i.date DESC",
	}

	cols := postgres.ExtractDBColumns[incoming.Incoming]()
	headerCols := make([]string, 0, len(cols)+2)
	for _, col := range cols {
		headerCols = append(headerCols, "i."+col)
	}
	headerCols = append(headerCols,
		"COALESCE(s.name, '') AS supplier_name",
		"COALESCE(w.name, '') AS warehouse_name",
	)

	return &IncomingRepo{
		baseDocRepo: baseDocRepo{
			txm:          txm,
			table:        "incoming_transactions",
			itemsTable:   "incoming_items",
			entityName:   "incoming transaction",
			numberSeq:    "incoming_number_seq",
			numberPrefix: "IN",
		},
		headerSpec: headerSpec,
		itemSpec:   itemSpec,
		headerCols: headerCols,
	}
}

// Create inserts the header and all items.
func (r *IncomingRepo) Create(ctx context.Context, doc *incoming.Incoming) error {
	if err := r.insertHeader(ctx, doc); err != nil {
		return err
	}
	return r.insertItems(ctx, doc.ID, doc.Items)
}

// GetByID loads the header with its items.
func (r *IncomingRepo) GetByID(ctx context.Context, docID id.ID) (*incoming.Incoming, error) {
	doc := &incoming.Incoming{}

	sql, args, err := r.Builder().
		Select(postgres.ExtractDBColumns[incoming.Incoming]()...).
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
		return nil, fmt.Errorf("get incoming: %w", err)
	}

	items, err := r.loadItems(ctx, docID)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

// Update rewrites the header and replaces the items.
func (r *IncomingRepo) Update(ctx context.Context, doc *incoming.Incoming) error {
	if err := r.updateHeader(ctx, doc); err != nil {
		return err
	}
	if err := r.deleteItems(ctx, doc.ID); err != nil {
		return err
	}
	return r.insertItems(ctx, doc.ID, doc.Items)
}

// List returns header rows with supplier and warehouse names.
func (r *IncomingRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[incoming.Row], error) {
	sel := r.Builder().
		Select(r.headerCols...).
		From("incoming_transactions i").
		LeftJoin("suppliers s ON s.id = i.supplier_id").
		LeftJoin("warehouses w ON w.id = i.warehouse_id")

	return listPage[incoming.Row](ctx, r.txm, sel, r.headerSpec, q)
}

// ListItemRows returns flattened item lines across documents.
func (r *IncomingRepo) ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error) {
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
		From("incoming_items it").
		Join("incoming_transactions i ON i.id = it.document_id").
		LeftJoin("products p ON p.id = it.product_id").
		LeftJoin("suppliers s ON s.id = i.supplier_id")

	return listPage[documents.ItemRow](ctx, r.txm, sel, r.itemSpec, q)
}
