package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/filter"
	"stockroom/internal/domain/requests"
)

type ProductRequestRequest struct {
	RequestedItem     string  `json:"requestedItem" binding:"required"`
	RequestedQuantity int     `json:"requestedQuantity" binding:"required"`
	FulfilledQuantity int     `json:"fulfilledQuantity"`
	RequestDate       string  `json:"requestDate"`
	Store             string  `json:"store"`
	Supplier          string  `json:"supplier"`
	UnitPrice         float64 `json:"unitPrice"`
	Notes             string  `json:"notes"`
}

func (r ProductRequestRequest) ToModel() (*requests.Request, error) {
	now := time.Now().UTC()
	req := &requests.Request{
		ID:                id.New(),
		RequestedItem:     r.RequestedItem,
		RequestedQuantity: r.RequestedQuantity,
		FulfilledQuantity: r.FulfilledQuantity,
		RequestDate:       now,
		Store:             r.Store,
		Supplier:          r.Supplier,
		UnitPrice:         decimal.NewFromFloat(r.UnitPrice),
		Notes:             r.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if r.RequestDate != "" {
		date, ok := filter.ParseDate(r.RequestDate)
		if !ok {
			return nil, apperror.NewValidation("requestDate must be yyyy-MM-dd or dd-MM-yyyy").
				WithDetail("field", "requestDate").WithDetail("value", r.RequestDate)
		}
		req.RequestDate = date
	}

	req.Recalculate()
	return req, nil
}

type FulfillRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type ProductRequestResponse struct {
	ID                string  `json:"id"`
	RequestedItem     string  `json:"requestedItem"`
	RequestedQuantity int     `json:"requestedQuantity"`
	FulfilledQuantity int     `json:"fulfilledQuantity"`
	RequestDate       string  `json:"requestDate"`
	FulfilledDate     string  `json:"fulfilledDate"`
	Store             string  `json:"store"`
	Supplier          string  `json:"supplier"`
	UnitPrice         float64 `json:"unitPrice"`
	TotalPrice        float64 `json:"totalPrice"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
}

func FromRequest(r *requests.Request) ProductRequestResponse {
	fulfilled := "-"
	if r.FulfilledDate != nil {
		fulfilled = r.FulfilledDate.Format(dateLayout)
	}
	return ProductRequestResponse{
		ID:                r.ID.String(),
		RequestedItem:     r.RequestedItem,
		RequestedQuantity: r.RequestedQuantity,
		FulfilledQuantity: r.FulfilledQuantity,
		RequestDate:       r.RequestDate.Format(dateLayout),
		FulfilledDate:     fulfilled,
		Store:             OrDash(r.Store),
		Supplier:          OrDash(r.Supplier),
		UnitPrice:         r.UnitPrice.InexactFloat64(),
		TotalPrice:        r.TotalPrice.InexactFloat64(),
		Status:            r.Status(),
		Notes:             r.Notes,
	}
}
