package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/internal/infrastructure/http/v1/dto"
	"stockroom/pkg/logger"
)

// CatalogService is the service surface shared by all catalog entities.
type CatalogService[T domain.Validatable] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entityID id.ID) error
	List(ctx context.Context, q domain.ListQuery) (domain.ListResult[T], error)
}

// CatalogHandler serves the uniform CRUD+list contract for one catalog
// entity. Entity specifics live in the decode/setID/render functions.
type CatalogHandler[T domain.Validatable] struct {
	*BaseHandler
	svc    CatalogService[T]
	decode func(c *gin.Context) (T, error)
	setID  func(entity T, entityID id.ID)
	render func(entity T) any

	// decodeMany enables the bulk-create route when set.
	decodeMany func(c *gin.Context) ([]T, error)
}

func NewCatalogHandler[T domain.Validatable](
	svc CatalogService[T],
	decode func(c *gin.Context) (T, error),
	setID func(entity T, entityID id.ID),
	render func(entity T) any,
) *CatalogHandler[T] {
	return &CatalogHandler[T]{
		BaseHandler: NewBaseHandler(),
		svc:         svc,
		decode:      decode,
		setID:       setID,
		render:      render,
	}
}

// Register mounts the CRUD routes on the group.
func (h *CatalogHandler[T]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	if h.decodeMany != nil {
		rg.POST("/bulk", h.BulkCreate)
	}
}

// BulkCreate inserts an array of entities, skipping duplicates. A
// non-duplicate failure abandons the rest of the batch; the response
// reports how many rows made it in, not a per-row result list.
func (h *CatalogHandler[T]) BulkCreate(c *gin.Context) {
	entities, err := h.decodeMany(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	var inserted int64
	for _, entity := range entities {
		if err := h.svc.Create(ctx, entity); err != nil {
			if apperror.IsDuplicate(err) {
				continue
			}
			logger.Warn(ctx, "bulk create aborted", "error", err, "inserted", inserted)
			break
		}
		inserted++
	}
	h.Created(c, dto.CountEnvelope{Success: true, Inserted: inserted})
}

// List serves the paginated, filterable list endpoint.
func (h *CatalogHandler[T]) List(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	rendered := make([]any, 0, len(result.Items))
	for _, item := range result.Items {
		rendered = append(rendered, h.render(item))
	}
	h.OK(c, dto.NewListEnvelope(rendered, result.Total, result.Page, result.Limit))
}

func (h *CatalogHandler[T]) GetByID(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entity, err := h.svc.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(h.render(entity)))
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	entity, err := h.decode(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.svc.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.NewDataEnvelope(h.render(entity)))
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	entity, err := h.decode(c)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.setID(entity, entityID)

	if err := h.svc.Update(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.svc.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(h.render(updated)))
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MessageEnvelope{Success: true, Message: "deleted"})
}
