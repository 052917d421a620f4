package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/catalogs/product"
)

type ProductRequest struct {
	CardNumber   string  `json:"cardNumber"`
	Name         string  `json:"name" binding:"required"`
	PartNumber   string  `json:"partNumber"`
	Description  string  `json:"description"`
	Stock        int     `json:"stock"`
	UnitPrice    float64 `json:"unitPrice"`
	ReorderLevel int     `json:"reorderLevel"`
	Status       string  `json:"status"`
	CategoryID   *string `json:"categoryId"`
	SupplierID   *string `json:"supplierId"`
}

// ToModel converts the request into a product, validating the optional
// reference ids.
func (r ProductRequest) ToModel() (*product.Product, error) {
	now := time.Now().UTC()
	p := &product.Product{
		ID:           id.New(),
		CardNumber:   r.CardNumber,
		Name:         r.Name,
		PartNumber:   r.PartNumber,
		Description:  r.Description,
		Stock:        r.Stock,
		UnitPrice:    decimal.NewFromFloat(r.UnitPrice),
		ReorderLevel: r.ReorderLevel,
		Status:       r.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if r.CategoryID != nil && *r.CategoryID != "" {
		cid, err := id.Parse(*r.CategoryID)
		if err != nil {
			return nil, apperror.NewValidation("categoryId is not a valid id").
				WithDetail("field", "categoryId").WithDetail("value", *r.CategoryID)
		}
		p.CategoryID = &cid
	}
	if r.SupplierID != nil && *r.SupplierID != "" {
		sid, err := id.Parse(*r.SupplierID)
		if err != nil {
			return nil, apperror.NewValidation("supplierId is not a valid id").
				WithDetail("field", "supplierId").WithDetail("value", *r.SupplierID)
		}
		p.SupplierID = &sid
	}
	return p, nil
}

type ProductResponse struct {
	ID           string    `json:"id"`
	CardNumber   string    `json:"cardNumber"`
	Name         string    `json:"name"`
	PartNumber   string    `json:"partNumber"`
	Description  string    `json:"description"`
	Stock        int       `json:"stock"`
	UnitPrice    float64   `json:"unitPrice"`
	ReorderLevel int       `json:"reorderLevel"`
	Status       string    `json:"status"`
	CategoryID   *string   `json:"categoryId,omitempty"`
	SupplierID   *string   `json:"supplierId,omitempty"`
	CategoryName string    `json:"categoryName"`
	SupplierName string    `json:"supplierName"`
	LowStock     bool      `json:"lowStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func fromProduct(p *product.Product, categoryName, supplierName string) ProductResponse {
	resp := ProductResponse{
		ID:           p.ID.String(),
		CardNumber:   p.CardNumber,
		Name:         p.Name,
		PartNumber:   OrDash(p.PartNumber),
		Description:  p.Description,
		Stock:        p.Stock,
		UnitPrice:    p.UnitPrice.InexactFloat64(),
		ReorderLevel: p.ReorderLevel,
		Status:       p.Status,
		CategoryName: OrDash(categoryName),
		SupplierName: OrDash(supplierName),
		LowStock:     p.LowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	if p.SupplierID != nil {
		s := p.SupplierID.String()
		resp.SupplierID = &s
	}
	return resp
}

func FromProduct(p *product.Product) ProductResponse {
	return fromProduct(p, "", "")
}

func FromProductRow(row product.Row) ProductResponse {
	return fromProduct(&row.Product, row.CategoryName, row.SupplierName)
}
