package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/documents"
	"stockroom/internal/domain/documents/incoming"
	"stockroom/internal/domain/documents/outgoing"
	"stockroom/internal/domain/filter"
)

const dateLayout = "2006-01-02"

// --- Items ---

type ItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     string  `json:"notes"`
}

func (r ItemRequest) ToModel() (documents.Item, error) {
	pid, err := id.Parse(r.ProductID)
	if err != nil {
		return documents.Item{}, apperror.NewValidation("productId is not a valid id").
			WithDetail("field", "productId").WithDetail("value", r.ProductID)
	}
	return documents.Item{
		ID:        id.New(),
		ProductID: pid,
		Quantity:  r.Quantity,
		UnitPrice: decimal.NewFromFloat(r.UnitPrice),
		Notes:     r.Notes,
	}, nil
}

func toItems(reqs []ItemRequest) ([]documents.Item, error) {
	items := make([]documents.Item, 0, len(reqs))
	for _, req := range reqs {
		item, err := req.ToModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type ItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Notes     string  `json:"notes"`
}

func FromItem(item documents.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice.InexactFloat64(),
		Notes:     item.Notes,
	}
}

type ItemRowResponse struct {
	ItemResponse
	ProductName string `json:"productName"`
	PartNumber  string `json:"partNumber"`
}

func FromItemRow(row documents.ItemRow) ItemRowResponse {
	return ItemRowResponse{
		ItemResponse: FromItem(row.Item),
		ProductName:  OrDash(row.ProductName),
		PartNumber:   OrDash(row.PartNumber),
	}
}

// --- Incoming ---

type IncomingRequest struct {
	Date        string        `json:"date" binding:"required"`
	SupplierID  *string       `json:"supplierId"`
	WarehouseID *string       `json:"warehouseId"`
	Notes       string        `json:"notes"`
	Status      string        `json:"status"`
	Items       []ItemRequest `json:"items" binding:"required"`
}

func (r IncomingRequest) ToModel() (*incoming.Incoming, error) {
	date, ok := filter.ParseDate(r.Date)
	if !ok {
		return nil, apperror.NewValidation("date must be yyyy-MM-dd or dd-MM-yyyy").
			WithDetail("field", "date").WithDetail("value", r.Date)
	}
	items, err := toItems(r.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &incoming.Incoming{
		ID:        id.New(),
		Date:      date,
		Notes:     r.Notes,
		Status:    documents.Status(r.Status),
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if r.SupplierID != nil && *r.SupplierID != "" {
		sid, err := id.Parse(*r.SupplierID)
		if err != nil {
			return nil, apperror.NewValidation("supplierId is not a valid id").
				WithDetail("field", "supplierId").WithDetail("value", *r.SupplierID)
		}
		doc.SupplierID = &sid
	}
	if r.WarehouseID != nil && *r.WarehouseID != "" {
		wid, err := id.Parse(*r.WarehouseID)
		if err != nil {
			return nil, apperror.NewValidation("warehouseId is not a valid id").
				WithDetail("field", "warehouseId").WithDetail("value", *r.WarehouseID)
		}
		doc.WarehouseID = &wid
	}
	return doc, nil
}

type IncomingResponse struct {
	ID            string         `json:"id"`
	Number        string         `json:"number"`
	Date          string         `json:"date"`
	SupplierName  string         `json:"supplierName"`
	WarehouseName string         `json:"warehouseName"`
	Status        string         `json:"status"`
	TotalAmount   float64        `json:"totalAmount"`
	Notes         string         `json:"notes"`
	Items         []ItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func FromIncoming(doc *incoming.Incoming) IncomingResponse {
	items := make([]ItemResponse, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, FromItem(item))
	}
	return IncomingResponse{
		ID:          doc.ID.String(),
		Number:      doc.Number,
		Date:        doc.Date.Format(dateLayout),
		Status:      string(doc.Status),
		TotalAmount: doc.TotalAmount.InexactFloat64(),
		Notes:       doc.Notes,
		Items:       items,
		CreatedAt:   doc.CreatedAt,
	}
}

func FromIncomingRow(row incoming.Row) IncomingResponse {
	resp := FromIncoming(&row.Incoming)
	resp.Items = nil
	resp.SupplierName = OrDash(row.SupplierName)
	resp.WarehouseName = OrDash(row.WarehouseName)
	return resp
}

// --- Outgoing ---

type OutgoingRequest struct {
	Date           string        `json:"date" binding:"required"`
	CustomerID     *string       `json:"customerId"`
	WarehouseID    *string       `json:"warehouseId"`
	Destination    string        `json:"destination"`
	SourceLocation string        `json:"sourceLocation"`
	Notes          string        `json:"notes"`
	Status         string        `json:"status"`
	Items          []ItemRequest `json:"items" binding:"required"`
}

func (r OutgoingRequest) ToModel() (*outgoing.Outgoing, error) {
	date, ok := filter.ParseDate(r.Date)
	if !ok {
		return nil, apperror.NewValidation("date must be yyyy-MM-dd or dd-MM-yyyy").
			WithDetail("field", "date").WithDetail("value", r.Date)
	}
	items, err := toItems(r.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &outgoing.Outgoing{
		ID:             id.New(),
		Date:           date,
		Destination:    r.Destination,
		SourceLocation: r.SourceLocation,
		Notes:          r.Notes,
		Status:         documents.Status(r.Status),
		Items:          items,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if r.CustomerID != nil && *r.CustomerID != "" {
		cid, err := id.Parse(*r.CustomerID)
		if err != nil {
			return nil, apperror.NewValidation("customerId is not a valid id").
				WithDetail("field", "customerId").WithDetail("value", *r.CustomerID)
		}
		doc.CustomerID = &cid
	}
	if r.WarehouseID != nil && *r.WarehouseID != "" {
		wid, err := id.Parse(*r.WarehouseID)
		if err != nil {
			return nil, apperror.NewValidation("warehouseId is not a valid id").
				WithDetail("field", "warehouseId").WithDetail("value", *r.WarehouseID)
		}
		doc.WarehouseID = &wid
	}
	return doc, nil
}

type OutgoingResponse struct {
	ID             string         `json:"id"`
	Number         string         `json:"number"`
	Date           string         `json:"date"`
	CustomerName   string         `json:"customerName"`
	WarehouseName  string         `json:"warehouseName"`
	Destination    string         `json:"destination"`
	SourceLocation string         `json:"sourceLocation"`
	Status         string         `json:"status"`
	TotalAmount    float64        `json:"totalAmount"`
	Notes          string         `json:"notes"`
	Items          []ItemResponse `json:"items,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func FromOutgoing(doc *outgoing.Outgoing) OutgoingResponse {
	items := make([]ItemResponse, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, FromItem(item))
	}
	return OutgoingResponse{
		ID:             doc.ID.String(),
		Number:         doc.Number,
		Date:           doc.Date.Format(dateLayout),
		Destination:    OrDash(doc.Destination),
		SourceLocation: OrDash(doc.SourceLocation),
		Status:         string(doc.Status),
		TotalAmount:    doc.TotalAmount.InexactFloat64(),
		Notes:          doc.Notes,
		Items:          items,
		CreatedAt:      doc.CreatedAt,
	}
}

func FromOutgoingRow(row outgoing.Row) OutgoingResponse {
	resp := FromOutgoing(&row.Outgoing)
	resp.Items = nil
	resp.CustomerName = OrDash(row.CustomerName)
	resp.WarehouseName = OrDash(row.WarehouseName)
	return resp
}
