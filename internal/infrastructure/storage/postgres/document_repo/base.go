// Package document_repo provides PostgreSQL persistence for stock
// transaction documents (header plus item lines).
package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/documents"
	"stockroom/internal/infrastructure/storage/postgres"
)

var itemCols = postgres.ExtractDBColumns[documents.Item]()

// baseDocRepo carries the shared header/items plumbing. Incoming and
// outgoing repositories embed it with their own table names.
type baseDocRepo struct {
	txm          *postgres.TxManager
	table        string
	itemsTable   string
	entityName   string
	numberSeq    string
	numberPrefix string
}

func (r *baseDocRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseDocRepo) Querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// insertHeader writes the document header from its "db" tags.
func (r *baseDocRepo) insertHeader(ctx context.Context, doc any) error {
	data := postgres.StructToMap(doc)

	sql, args, err := r.Builder().
		Insert(r.table).
		SetMap(data).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		if classified := postgres.ClassifyError(err, r.entityName); classified != err {
			return classified
		}
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// updateHeader rewrites all mutable header columns.
func (r *baseDocRepo) updateHeader(ctx context.Context, doc any) error {
	data := postgres.StructToMap(doc)
	docID, ok := data["id"]
	if !ok {
		return fmt.Errorf("document has no 'id' field with db tag")
	}
	delete(data, "id")
	delete(data, "created_at")

	sql, args, err := r.Builder().
		Update(r.table).
		SetMap(data).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if classified := postgres.ClassifyError(err, r.entityName); classified != err {
			return classified
		}
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, docID)
	}
	return nil
}

// insertItems writes all item lines for the document.
func (r *baseDocRepo) insertItems(ctx context.Context, docID id.ID, items []documents.Item) error {
	if len(items) == 0 {
		return nil
	}

	ins := r.Builder().Insert(r.itemsTable).Columns(itemCols...)
	for _, item := range items {
		if id.IsNil(item.ID) {
			item.ID = id.New()
		}
		item.DocumentID = docID
		data := postgres.StructToMap(item)
		vals := make([]any, len(itemCols))
		for i, col := range itemCols {
			vals[i] = data[col]
		}
		ins = ins.Values(vals...)
	}

	sql, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build items insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		if classified := postgres.ClassifyError(err, r.entityName); classified != err {
			return classified
		}
		return fmt.Errorf("insert %s: %w", r.itemsTable, err)
	}
	return nil
}

// deleteItems removes all item lines of the document.
func (r *baseDocRepo) deleteItems(ctx context.Context, docID id.ID) error {
	sql, args, err := r.Builder().
		Delete(r.itemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build items delete: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", r.itemsTable, err)
	}
	return nil
}

// loadItems reads the document's item lines.
func (r *baseDocRepo) loadItems(ctx context.Context, docID id.ID) ([]documents.Item, error) {
	sql, args, err := r.Builder().
		Select(itemCols...).
		From(r.itemsTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	var items []documents.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", r.itemsTable, err)
	}
	return items, nil
}

// UpdateStatus moves the document between Draft and Done.
func (r *baseDocRepo) UpdateStatus(ctx context.Context, docID id.ID, status documents.Status) error {
	sql, args, err := r.Builder().
		Update(r.table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build status update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, docID.String())
	}
	return nil
}

// Delete removes the document and its items.
func (r *baseDocRepo) Delete(ctx context.Context, docID id.ID) error {
	if err := r.deleteItems(ctx, docID); err != nil {
		return err
	}

	sql, args, err := r.Builder().
		Delete(r.table).
		Where(squirrel.Eq{"id": docID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, docID.String())
	}
	return nil
}

// NextNumber allocates the next document number from the sequence.
func (r *baseDocRepo) NextNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.Querier(ctx).QueryRow(ctx, "SELECT nextval('"+r.numberSeq+"')").Scan(&n); err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}
	return fmt.Sprintf("%s-%06d", r.numberPrefix, n), nil
}
