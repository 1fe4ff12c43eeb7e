package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/auth"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	authSvc *auth.Service
	logger  *logger.Logger
}

func NewHandler(authSvc *auth.Service, logger *logger.Logger) *Handler {
	return &Handler{authSvc: authSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("login rejected", "email", req.Email)
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(token))
}

func (h *Handler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token != "" {
		h.authSvc.Logout(token)
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"message": "logged out"}))
}
