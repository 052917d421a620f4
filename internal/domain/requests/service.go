package requests

import (
	"context"
	"time"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

// Repository extends catalog CRUD with a pending-count query used by
// the dashboard summary.
type Repository interface {
	domain.CatalogRepository[*Request]
	CountPending(ctx context.Context) (int64, error)
}

// Service provides request business logic.
type Service struct {
	*domain.CatalogService[*Request]
	repo Repository
	tx   domain.TxRunner
}

func NewService(repo Repository, tx domain.TxRunner) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Request]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "request",
		}),
		repo: repo,
		tx:   tx,
	}
}

// Fulfill records a delivered quantity against the request. The
// fulfilled date is stamped the first time the request leaves Pending.
func (s *Service) Fulfill(ctx context.Context, requestID id.ID, quantity int) (*Request, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").WithDetail("value", quantity)
	}

	req, err := s.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	req.FulfilledQuantity += quantity
	if req.FulfilledDate == nil {
		now := time.Now().UTC()
		req.FulfilledDate = &now
	}

	err = s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}
