package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/catalogs/category"
	"stockroom/internal/domain/catalogs/customer"
	"stockroom/internal/domain/catalogs/supplier"
	"stockroom/internal/domain/catalogs/warehouse"
	"stockroom/internal/infrastructure/http/v1/dto"
)

func bindBody[R any](c *gin.Context) (R, error) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, apperror.NewValidation("invalid request body").WithDetail("error", err.Error())
	}
	return req, nil
}

// NewCategoryHandler serves /categories.
func NewCategoryHandler(svc *category.Service) *CatalogHandler[*category.Category] {
	h := NewCatalogHandler[*category.Category](svc,
		func(c *gin.Context) (*category.Category, error) {
			req, err := bindBody[dto.CategoryRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		func(e *category.Category, entityID id.ID) { e.ID = entityID },
		func(e *category.Category) any { return dto.FromCategory(e) },
	)
	h.decodeMany = func(c *gin.Context) ([]*category.Category, error) {
		reqs, err := bindBody[[]dto.CategoryRequest](c)
		if err != nil {
			return nil, err
		}
		out := make([]*category.Category, 0, len(reqs))
		for _, req := range reqs {
			out = append(out, req.ToModel())
		}
		return out, nil
	}
	return h
}

// NewSupplierHandler serves /suppliers.
func NewSupplierHandler(svc *supplier.Service) *CatalogHandler[*supplier.Supplier] {
	h := NewCatalogHandler[*supplier.Supplier](svc,
		func(c *gin.Context) (*supplier.Supplier, error) {
			req, err := bindBody[dto.CounterpartyRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToSupplier(), nil
		},
		func(e *supplier.Supplier, entityID id.ID) { e.ID = entityID },
		func(e *supplier.Supplier) any { return dto.FromSupplier(e) },
	)
	h.decodeMany = func(c *gin.Context) ([]*supplier.Supplier, error) {
		reqs, err := bindBody[[]dto.CounterpartyRequest](c)
		if err != nil {
			return nil, err
		}
		out := make([]*supplier.Supplier, 0, len(reqs))
		for _, req := range reqs {
			out = append(out, req.ToSupplier())
		}
		return out, nil
	}
	return h
}

// NewCustomerHandler serves /customers.
func NewCustomerHandler(svc *customer.Service) *CatalogHandler[*customer.Customer] {
	h := NewCatalogHandler[*customer.Customer](svc,
		func(c *gin.Context) (*customer.Customer, error) {
			req, err := bindBody[dto.CounterpartyRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToCustomer(), nil
		},
		func(e *customer.Customer, entityID id.ID) { e.ID = entityID },
		func(e *customer.Customer) any { return dto.FromCustomer(e) },
	)
	h.decodeMany = func(c *gin.Context) ([]*customer.Customer, error) {
		reqs, err := bindBody[[]dto.CounterpartyRequest](c)
		if err != nil {
			return nil, err
		}
		out := make([]*customer.Customer, 0, len(reqs))
		for _, req := range reqs {
			out = append(out, req.ToCustomer())
		}
		return out, nil
	}
	return h
}

// NewWarehouseHandler serves /warehouses.
func NewWarehouseHandler(svc *warehouse.Service) *CatalogHandler[*warehouse.Warehouse] {
	return NewCatalogHandler[*warehouse.Warehouse](svc,
		func(c *gin.Context) (*warehouse.Warehouse, error) {
			req, err := bindBody[dto.WarehouseRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel(), nil
		},
		func(e *warehouse.Warehouse, entityID id.ID) { e.ID = entityID },
		func(e *warehouse.Warehouse) any { return dto.FromWarehouse(e) },
	)
}
