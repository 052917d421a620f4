package category

import (
	"context"
	"fmt"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

// ProductCounter reports how many products reference a category.
// Implemented by the product repository.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID id.ID) (int64, error)
}

// Service provides category business logic.
type Service struct {
	*domain.CatalogService[*Category]
}

// NewService creates a category service. Deleting a category that still
// has products is refused so product rows never lose their category link.
func NewService(repo domain.CatalogRepository[*Category], tx domain.TxRunner, products ProductCounter) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Category]{
			Repo:       repo,
			TxRunner:   tx,
			EntityName: "category",
		}),
	}

	s.Hooks().On(domain.BeforeDelete, func(ctx context.Context, c *Category) error {
		n, err := products.CountByCategory(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("count products in category: %w", err)
		}
		if n > 0 {
			return apperror.NewInUse("category has products assigned to it").
				WithDetail("categoryId", c.ID.String()).
				WithDetail("productCount", n)
		}
		return nil
	})

	return s
}
