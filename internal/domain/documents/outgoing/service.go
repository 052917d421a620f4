package outgoing

import (
	"context"
	"fmt"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/domain/documents"
	"stockroom/pkg/logger"
)

// Service provides outgoing document business logic.
type Service struct {
	repo  Repository
	stock documents.StockKeeper
	tx    domain.TxRunner
}

func NewService(repo Repository, stock documents.StockKeeper, tx domain.TxRunner) *Service {
	return &Service{repo: repo, stock: stock, tx: tx}
}

func (s *Service) notFound(err error, docID id.ID) error {
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound("outgoing transaction", docID.String())
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("id", docID.String())
}

// Create stores a new document. A document created directly as Done
// removes its stock in the same transaction and fails on shortage.
func (s *Service) Create(ctx context.Context, doc *Outgoing) error {
	if id.IsNil(doc.ID) {
		doc.ID = id.New()
	}
	if err := doc.Validate(ctx); err != nil {
		return err
	}
	if doc.Number == "" {
		num, err := s.repo.NextNumber(ctx)
		if err != nil {
			return fmt.Errorf("allocate document number: %w", err)
		}
		doc.Number = num
	}
	doc.Recalculate()

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create outgoing: %w", err)
		}
		if doc.Status == documents.StatusDone {
			return documents.ApplyStock(ctx, s.stock, doc.Items, -1)
		}
		return nil
	})
}

// GetByID loads a document with its items.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Outgoing, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, s.notFound(err, docID)
	}
	return doc, nil
}

// Update rewrites a Draft document. Done documents are frozen.
func (s *Service) Update(ctx context.Context, doc *Outgoing) error {
	existing, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return s.notFound(err, doc.ID)
	}
	if existing.Status == documents.StatusDone {
		return apperror.NewDocumentDone(doc.ID.String())
	}

	doc.Status = documents.StatusDraft
	doc.Number = existing.Number
	if err := doc.Validate(ctx); err != nil {
		return err
	}
	doc.Recalculate()

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update outgoing: %w", err)
		}
		return nil
	})
}

// Post moves a Draft document to Done and removes stock for every item.
// Fails with a 409 when any product lacks sufficient stock.
func (s *Service) Post(ctx context.Context, docID id.ID) (*Outgoing, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, s.notFound(err, docID)
	}
	if doc.Status == documents.StatusDone {
		return nil, apperror.NewDocumentDone(docID.String())
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := documents.ApplyStock(ctx, s.stock, doc.Items, -1); err != nil {
			return err
		}
		return s.repo.UpdateStatus(ctx, docID, documents.StatusDone)
	})
	if err != nil {
		return nil, err
	}

	doc.Status = documents.StatusDone
	logger.Info(ctx, "outgoing transaction posted", "id", docID.String(), "items", len(doc.Items))
	return doc, nil
}

// Delete removes a document. Deleting a Done document returns its stock.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return s.notFound(err, docID)
	}

	return s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.Status == documents.StatusDone {
			if err := documents.ApplyStock(ctx, s.stock, doc.Items, +1); err != nil {
				return err
			}
		}
		if err := s.repo.Delete(ctx, docID); err != nil {
			return fmt.Errorf("delete outgoing: %w", err)
		}
		return nil
	})
}

// List returns header rows.
func (s *Service) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return s.repo.List(ctx, q)
}

// ListItemRows returns flattened item lines across documents.
func (s *Service) ListItemRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[documents.ItemRow], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return s.repo.ListItemRows(ctx, q)
}
