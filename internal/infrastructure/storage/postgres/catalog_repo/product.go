package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"golang.org/x/sync/errgroup"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/catalogs/product"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// ProductRepo persists products. List filtering and sorting reach
// through the category and supplier joins.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
	rowSpec queryspec.Spec
	rowCols []string
}

func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	// Spec for the bare table, used by plain CRUD listing.
	baseSpec := queryspec.Spec{
		Columns: map[string]string{
			"cardNumber":   "card_number",
			"name":         "name",
			"partNumber":   "part_number",
			"description":  "description",
			"stock":        "stock",
			"unitPrice":    "unit_price",
			"reorderLevel": "reorder_level",
			"status":       "status",
			"createdAt":    "created_at",
			"updatedAt":    "updated_at",
		},
		Search:       []string{"name", "part_number", "card_number"},
		Dates:        map[string]bool{"createdAt": true, "updatedAt": true},
		DefaultOrder: "name ASC",
	}

	// Spec for the joined projection: public names resolve through the
	// category (c) and supplier (s) relations.
	rowSpec := queryspec.Spec{
		Columns: map[string]string{
			"cardNumber":   "p.card_number",
			"name":         "p.name",
			"partNumber":   "p.part_number",
			"description":  "p.description",
			"stock":        "p.stock",
			"unitPrice":    "p.unit_price",
			"reorderLevel": "p.reorder_level",
			"status":       "p.status",
			"categoryName": "c.name",
			"supplierName": "s.name",
			"createdAt":    "p.created_at",
			"updatedAt":    "p.updated_at",
		},
		Search:       []string{"p.name", "p.part_number", "p.card_number", "c.name", "s.name"},
		Dates:        map[string]bool{"createdAt": true, "updatedAt": true},
		DefaultOrder: "p.name ASC",
	}

	cols := postgres.ExtractDBColumns[product.Product]()
	rowCols := make([]string, 0, len(cols)+2)
	for _, col := range cols {
		rowCols = append(rowCols, "p."+col)
	}
	rowCols = append(rowCols,
		"COALESCE(c.name, '') AS category_name",
		"COALESCE(s.name, '') AS supplier_name",
	)

	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "products", "product", baseSpec,
			func() *product.Product { return &product.Product{} }),
		rowSpec: rowSpec,
		rowCols: rowCols,
	}
}

// ListRows returns one page of the joined projection. Count and page
// fetch run concurrently, same as the base repository.
func (r *ProductRepo) ListRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[product.Row], error) {
	result := domain.ListResult[product.Row]{Page: q.Page, Limit: q.Limit}

	sel := r.Builder().
		Select(r.rowCols...).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id").
		LeftJoin("suppliers s ON s.id = p.supplier_id")
	if where := r.rowSpec.Where(q.Filters, q.Search); where != nil {
		sel = sel.Where(where)
	}

	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(sel, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	pageSQL, pageArgs, err := sel.
		OrderBy(r.rowSpec.OrderBy(q.SortField, q.SortOrder)).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build page query: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := r.Querier(gctx).QueryRow(gctx, countSQL, countArgs...).Scan(&result.Total); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := pgxscan.Select(gctx, r.Querier(gctx), &result.Items, pageSQL, pageArgs...); err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	if result.Items == nil {
		result.Items = []product.Row{}
	}
	return result, nil
}

// GetForUpdate loads a product with a row lock for stock mutation.
func (r *ProductRepo) GetForUpdate(ctx context.Context, productID id.ID) (*product.Product, error) {
	p := &product.Product{}

	sql, args, err := r.Builder().
		Select(postgres.ExtractDBColumns[product.Product]()...).
		From("products").
		Where(squirrel.Eq{"id": productID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, fmt.Errorf("get for update: %w", err)
	}
	return p, nil
}

// AdjustStock applies a signed delta to the product's on-hand quantity.
func (r *ProductRepo) AdjustStock(ctx context.Context, productID id.ID, delta int) error {
	sql, args, err := r.Builder().
		Update("products").
		Set("stock", squirrel.Expr("stock + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": productID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", productID.String())
	}
	return nil
}

// BulkCreate inserts many products in a single statement and reports
// the inserted row count. Duplicate card numbers are skipped.
func (r *ProductRepo) BulkCreate(ctx context.Context, products []*product.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	cols := postgres.ExtractDBColumns[product.Product]()
	ins := r.Builder().Insert("products").Columns(cols...)
	for _, p := range products {
		data := postgres.StructToMap(p)
		vals := make([]any, len(cols))
		for i, col := range cols {
			vals[i] = data[col]
		}
		ins = ins.Values(vals...)
	}
	ins = ins.Suffix("ON CONFLICT (card_number) DO NOTHING")

	sql, args, err := ins.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build bulk insert: %w", err)
	}

	tag, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if classified := postgres.ClassifyError(err, "product"); classified != err {
			return 0, classified
		}
		return 0, fmt.Errorf("bulk insert products: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByCategory reports how many products reference the category.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID id.ID) (int64, error) {
	sql, args, err := r.Builder().
		Select("COUNT(*)").
		From("products").
		Where(squirrel.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count by category: %w", err)
	}
	return n, nil
}

// NextCardNumber allocates the next card number from a sequence.
func (r *ProductRepo) NextCardNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, "SELECT nextval('product_card_number_seq')").Scan(&n); err != nil {
		return "", fmt.Errorf("next card number: %w", err)
	}
	return fmt.Sprintf("PRD-%06d", n), nil
}
