package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/domain/auth"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// UserHandler serves /users. All routes sit behind the admin role
// guard; see the router.
type UserHandler struct {
	*BaseHandler
	svc *auth.Service
}

func NewUserHandler(svc *auth.Service) *UserHandler {
	return &UserHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/password", h.ChangePassword)
	rg.DELETE("/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	q := dto.ParseListQuery(c.Request.URL.Query())

	result, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	users := make([]dto.UserResponse, 0, len(result.Items))
	for _, u := range result.Items {
		users = append(users, dto.FromUser(u))
	}
	h.OK(c, dto.NewListEnvelope(users, result.Total, result.Page, result.Limit))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromUser(user)))
}

func (h *UserHandler) Create(c *gin.Context) {
	req, err := bindBody[dto.CreateUserRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	user := req.ToModel()
	if err := h.svc.CreateUser(c.Request.Context(), user, req.Password); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.NewDataEnvelope(dto.FromUser(user)))
}

// Update changes profile fields only. The password has its own route
// so a profile edit can never silently reset credentials.
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	req, err := bindBody[dto.UpdateUserRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.svc.GetByID(ctx, userID)
	if err != nil {
		h.Error(c, err)
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	user.Address = req.Address
	if req.Role != "" {
		user.Role = auth.Role(req.Role)
	}
	if req.Status != "" {
		user.Status = req.Status
	}

	if err := h.svc.Update(ctx, user); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewDataEnvelope(dto.FromUser(user)))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	req, err := bindBody[dto.ChangePasswordRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), userID, req.Password); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MessageEnvelope{Success: true, Message: "password updated"})
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.MessageEnvelope{Success: true, Message: "deleted"})
}
