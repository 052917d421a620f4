package catalog_repo

import (
	"stockroom/internal/domain/catalogs/customer"
	"stockroom/internal/domain/catalogs/supplier"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// Suppliers and customers share one column shape, so both specs are
// produced by the same helper.
func counterpartySpec() queryspec.Spec {
	return queryspec.Spec{
		Columns: map[string]string{
			"name":          "name",
			"phone":         "phone",
			"email":         "email",
			"address":       "address",
			"contactPerson": "contact_person",
			"status":        "status",
			"createdAt":     "created_at",
			"updatedAt":     "updated_at",
		},
		Search:       []string{"name", "phone", "email", "contact_person"},
		Dates:        map[string]bool{"createdAt": true, "updatedAt": true},
		DefaultOrder: "name ASC",
	}
}

// SupplierRepo persists suppliers.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "suppliers", "supplier", counterpartySpec(),
			func() *supplier.Supplier { return &supplier.Supplier{} }),
	}
}

// CustomerRepo persists customers.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "customers", "customer", counterpartySpec(),
			func() *customer.Customer { return &customer.Customer{} }),
	}
}
