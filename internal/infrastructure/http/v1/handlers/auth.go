package handlers

import (
	"github.com/gin-gonic/gin"

	"stockroom/internal/domain/auth"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves /auth.
type AuthHandler struct {
	*BaseHandler
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	req, err := bindBody[dto.LoginRequest](c)
	if err != nil {
		h.Error(c, err)
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSession(session))
}
