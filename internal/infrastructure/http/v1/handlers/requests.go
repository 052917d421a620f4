package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/core/id"
	"stockroom/internal/domain/requests"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// RequestHandler serves /product-requests. It reuses the generic
// catalog routes and adds the fulfill action on top.
type RequestHandler struct {
	*CatalogHandler[*requests.Request]
	svc *requests.Service
}

func NewRequestHandler(svc *requests.Service) *RequestHandler {
	base := NewCatalogHandler[*requests.Request](svc,
		func(c *gin.Context) (*requests.Request, error) {
			req, err := bindBody[dto.ProductRequestRequest](c)
			if err != nil {
				return nil, err
			}
			return req.ToModel()
		},
		func(e *requests.Request, entityID id.ID) { e.ID = entityID },
		func(e *requests.Request) any { return dto.FromRequest(e) },
	)
	return &RequestHandler{CatalogHandler: base, svc: svc}
}

func (h *RequestHandler) Register(rg *gin.RouterGroup) {
	h.CatalogHandler.Register(rg)
	rg.POST("/:id/fulfill", h.Fulfill)
}

// Fulfill records a delivered quantity against the request. The status
// in the response is derived from the updated quantities.
func (h *RequestHandler) Fulfill(c *gin.Context) {
	requestID, ok := h.ParseID(c)
	if !ok {
		return
	}

	body, err := bindBody[dto.FulfillRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	req, err := h.svc.Fulfill(c.Request.Context(), requestID, body.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromRequest(req)))
}
