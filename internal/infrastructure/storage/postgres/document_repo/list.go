package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"golang.org/x/sync/errgroup"

	"stockroom/internal/domain"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// listPage runs the translated count and page queries concurrently and
// scans the page into T. Shared by all document list projections.
func listPage[T any](
	ctx context.Context,
	txm *postgres.TxManager,
	sel squirrel.SelectBuilder,
	spec queryspec.Spec,
	q domain.ListQuery,
) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{Page: q.Page, Limit: q.Limit}

	if where := spec.Where(q.Filters, q.Search); where != nil {
		sel = sel.Where(where)
	}

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	countSQL, countArgs, err := builder.
		Select("COUNT(*)").
		FromSelect(sel, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	pageSQL, pageArgs, err := sel.
		OrderBy(spec.OrderBy(q.SortField, q.SortOrder)).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build page query: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := txm.GetQuerier(gctx).QueryRow(gctx, countSQL, countArgs...).Scan(&result.Total); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := pgxscan.Select(gctx, txm.GetQuerier(gctx), &result.Items, pageSQL, pageArgs...); err != nil {
			return fmt.Errorf("fetch page: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, err
	}

	if result.Items == nil {
		result.Items = []T{}
	}
	return result, nil
}
