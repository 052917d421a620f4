package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/domain/documents/incoming"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// IncomingHandler serves /incoming-transactions.
type IncomingHandler struct {
	*BaseHandler
	svc *incoming.Service
}

func NewIncomingHandler(svc *incoming.Service) *IncomingHandler {
	return &IncomingHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *IncomingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/items", h.ListItems)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/post", h.Post)
	rg.DELETE("/:id", h.Delete)
}

func (h *IncomingHandler) List(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows := make([]dto.IncomingResponse, 0, len(result.Items))
	for _, row := range result.Items {
		rows = append(rows, dto.FromIncomingRow(row))
	}
	h.OK(c, dto.NewListEnvelope(rows, result.Total, result.Page, result.Limit))
}

// ListItems serves the flattened item lines across all documents.
func (h *IncomingHandler) ListItems(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.ListItemRows(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows := make([]dto.ItemRowResponse, 0, len(result.Items))
	for _, row := range result.Items {
		rows = append(rows, dto.FromItemRow(row))
	}
	h.OK(c, dto.NewListEnvelope(rows, result.Total, result.Page, result.Limit))
}

func (h *IncomingHandler) GetByID(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.svc.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromIncoming(doc)))
}

func (h *IncomingHandler) Create(c *gin.Context) {
	req, err := bindBody[dto.IncomingRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}
	doc, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.svc.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.NewDataEnvelope(dto.FromIncoming(doc)))
}

func (h *IncomingHandler) Update(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	req, err := bindBody[dto.IncomingRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}
	doc, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}
	doc.ID = docID

	if err := h.svc.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromIncoming(doc)))
}

// Post moves the document from Draft to Done and applies its stock
// effect.
func (h *IncomingHandler) Post(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.svc.Post(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromIncoming(doc)))
}

func (h *IncomingHandler) Delete(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MessageEnvelope{Success: true, Message: "deleted"})
}
