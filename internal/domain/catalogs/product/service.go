package product

import (
	"context"
	"fmt"

	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

// Service provides product business logic.
type Service struct {
	*domain.CatalogService[*Product]
	repo Repository
	tx   domain.TxRunner
}

// NewService creates a product service. Products created without a card
// number get the next sequential one.
func NewService(repo Repository, tx domain.TxRunner) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "product",
		}),
		repo: repo,
		tx:   tx,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, p *Product) error {
		if p.CardNumber != "" {
			return nil
		}
		num, err := repo.NextCardNumber(ctx)
		if err != nil {
			return fmt.Errorf("allocate card number: %w", err)
		}
		p.CardNumber = num
		return nil
	})

	return s
}

// ListRows returns a page of products with resolved category and
// supplier names.
func (s *Service) ListRows(ctx context.Context, q domain.ListQuery) (domain.ListResult[Row], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return s.repo.ListRows(ctx, q)
}

// BulkCreate validates and inserts many products in one transaction.
// Returns the number of rows written.
func (s *Service) BulkCreate(ctx context.Context, products []*Product) (int64, error) {
	for i, p := range products {
		if id.IsNil(p.ID) {
			p.ID = id.New()
		}
		if err := p.Validate(ctx); err != nil {
			return 0, fmt.Errorf("product %d: %w", i, err)
		}
		if p.CardNumber == "" {
			num, err := s.repo.NextCardNumber(ctx)
			if err != nil {
				return 0, fmt.Errorf("allocate card number: %w", err)
			}
			p.CardNumber = num
		}
	}

	var n int64
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		n, err = s.repo.BulkCreate(ctx, products)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// CountByCategory implements the category deletion guard dependency.
func (s *Service) CountByCategory(ctx context.Context, categoryID id.ID) (int64, error) {
	return s.repo.CountByCategory(ctx, categoryID)
}
