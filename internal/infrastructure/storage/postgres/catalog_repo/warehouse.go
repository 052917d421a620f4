package catalog_repo

import (
	"stockroom/internal/domain/catalogs/warehouse"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// WarehouseRepo persists warehouses.
type WarehouseRepo struct {
	*BaseCatalogRepo[*warehouse.Warehouse]
}

func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	spec := queryspec.Spec{
		Columns: map[string]string{
			"name":      "name",
			"address":   "address",
			"status":    "status",
			"createdAt": "created_at",
			"updatedAt": "updated_at",
		},
		Search:       []string{"name", "address"},
		Dates:        map[string]bool{"createdAt": true, "updatedAt": true},
		DefaultOrder: "name ASC",
	}

	return &WarehouseRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "warehouses", "warehouse", spec,
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} }),
	}
}
