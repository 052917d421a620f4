package catalog_repo

import (
	"stockroom/internal/domain/catalogs/category"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// CategoryRepo persists product categories.
type CategoryRepo struct {
	*BaseCatalogRepo[*category.Category]
}

func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	spec := queryspec.Spec{
		Columns: map[string]string{
			"name": "name",
			// The client sends "categoryName" on category screens too.
			"categoryName": "name",
			"description":  "description",
			"createdAt":    "created_at",
			"updatedAt":    "updated_at",
		},
		Search:       []string{"name", "description"},
		Dates:        map[string]bool{"createdAt": true, "updatedAt": true},
		DefaultOrder: "name ASC",
	}

	return &CategoryRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "categories", "category", spec,
			func() *category.Category { return &category.Category{} }),
	}
}
