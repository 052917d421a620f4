package dto

import (
	"time"

	"stockroom/internal/domain/catalogs/category"
	"stockroom/internal/domain/catalogs/customer"
	"stockroom/internal/domain/catalogs/supplier"
	"stockroom/internal/domain/catalogs/warehouse"
	"stockroom/internal/core/id"
)

// --- Category ---

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CategoryRequest) ToModel() *category.Category {
	return category.New(r.Name, r.Description)
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// --- Supplier / Customer ---

type CounterpartyRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	Status        string `json:"status"`
}

func (r CounterpartyRequest) ToSupplier() *supplier.Supplier {
	now := time.Now().UTC()
	return &supplier.Supplier{
		ID:            id.New(),
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		ContactPerson: r.ContactPerson,
		Status:        r.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r CounterpartyRequest) ToCustomer() *customer.Customer {
	now := time.Now().UTC()
	return &customer.Customer{
		ID:            id.New(),
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		ContactPerson: r.ContactPerson,
		Status:        r.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type CounterpartyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromSupplier(s *supplier.Supplier) CounterpartyResponse {
	return CounterpartyResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		Phone:         OrDash(s.Phone),
		Email:         OrDash(s.Email),
		Address:       OrDash(s.Address),
		ContactPerson: OrDash(s.ContactPerson),
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromCustomer(c *customer.Customer) CounterpartyResponse {
	return CounterpartyResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Phone:         OrDash(c.Phone),
		Email:         OrDash(c.Email),
		Address:       OrDash(c.Address),
		ContactPerson: OrDash(c.ContactPerson),
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// --- Warehouse ---

type WarehouseRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (r WarehouseRequest) ToModel() *warehouse.Warehouse {
	now := time.Now().UTC()
	return &warehouse.Warehouse{
		ID:        id.New(),
		Name:      r.Name,
		Address:   r.Address,
		Status:    r.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromWarehouse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Address:   OrDash(w.Address),
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
