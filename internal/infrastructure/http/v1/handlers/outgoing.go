package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/domain/documents/outgoing"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// OutgoingHandler serves /outgoing-transactions.
type OutgoingHandler struct {
	*BaseHandler
	svc *outgoing.Service
}

func NewOutgoingHandler(svc *outgoing.Service) *OutgoingHandler {
	return &OutgoingHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *OutgoingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/items", h.ListItems)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/post", h.Post)
	rg.DELETE("/:id", h.Delete)
}

func (h *OutgoingHandler) List(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	rows := make([]dto.OutgoingResponse, 0, len(result.Items))
	for _, row := range result.Items {
		rows = append(rows, dto.FromOutgoingRow(row))
	}
	h.OK(c, dto.NewListEnvelope(rows, result.Total, result.Page, result.Limit))
}

func (h *OutgoingHandler) ListItems(c *gin.Context) {
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

func (h *OutgoingHandler) GetByID(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.svc.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromOutgoing(doc)))
}

func (h *OutgoingHandler) Create(c *gin.Context) {
	req, err := bindBody[dto.OutgoingRequest](c)
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
	h.Created(c, dto.NewDataEnvelope(dto.FromOutgoing(doc)))
}

func (h *OutgoingHandler) Update(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	req, err := bindBody[dto.OutgoingRequest](c)
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
	h.OK(c, dto.NewDataEnvelope(dto.FromOutgoing(doc)))
}

// Post moves the document from Draft to Done. Posting fails with a
// conflict when any line would drive a product's stock negative.
func (h *OutgoingHandler) Post(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.svc.Post(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromOutgoing(doc)))
}

func (h *OutgoingHandler) Delete(c *gin.Context) {
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
