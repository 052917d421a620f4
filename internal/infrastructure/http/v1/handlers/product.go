package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/domain/catalogs/product"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves /products. Lists use the joined projection so
// category and supplier names come back resolved.
type ProductHandler struct {
	*BaseHandler
	svc *product.Service
}

func NewProductHandler(svc *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/bulk", h.BulkCreate)
}

func (h *ProductHandler) List(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.ListRows(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows := make([]dto.ProductResponse, 0, len(result.Items))
	for _, row := range result.Items {
		rows = append(rows, dto.FromProductRow(row))
	}
	h.OK(c, dto.NewListEnvelope(rows, result.Total, result.Page, result.Limit))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromProduct(p)))
}

func (h *ProductHandler) Create(c *gin.Context) {
	req, err := bindBody[dto.ProductRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}
	p, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.svc.Create(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.NewDataEnvelope(dto.FromProduct(p)))
}

func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}

	req, err := bindBody[dto.ProductRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}
	p, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}
	p.ID = productID

	if err := h.svc.Update(c.Request.Context(), p); err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.svc.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromProduct(updated)))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MessageEnvelope{Success: true, Message: "deleted"})
}

// BulkCreate inserts an array of products in one statement; rows with
// an already-used card number are skipped.
func (h *ProductHandler) BulkCreate(c *gin.Context) {
	reqs, err := bindBody[[]dto.ProductRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	products := make([]*product.Product, 0, len(reqs))
	for _, req := range reqs {
		p, err := req.ToModel()
		if err != nil {
			h.Error(c, err)
			return
		}
		products = append(products, p)
	}

	inserted, err := h.svc.BulkCreate(c.Request.Context(), products)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.CountEnvelope{Success: true, Inserted: inserted})
}
