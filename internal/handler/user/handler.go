package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/middleware"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/booking"
	"github.com/bellezapura/salon-api/internal/service/user"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	userSvc    *user.Service
	bookingSvc *booking.Service
	logger     *logger.Logger
}

func NewHandler(userSvc *user.Service, bookingSvc *booking.Service, logger *logger.Logger) *Handler {
	return &Handler{userSvc: userSvc, bookingSvc: bookingSvc, logger: logger}
}

// RegisterRoutes exposes the caller's own profile and credits.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.GET("/me/credits", h.MyCredits)
}

// RegisterAdminRoutes exposes account management and over-the-counter
// package sales.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.POST("/users", h.Create)
	rg.GET("/users/:id", h.Get)
	rg.PUT("/users/:id", h.Update)
	rg.GET("/users/:id/credits", h.Credits)
	rg.POST("/users/:id/packages", h.SellPackage)
}

func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing credentials"))
		return
	}

	u, err := h.userSvc.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) MyCredits(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing credentials"))
		return
	}

	credits, err := h.userSvc.Credits(c.Request.Context(), claims.UserID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(credits))
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("user created", "user_id", u.ID.String())
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(u))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	u, err := h.userSvc.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	u, err := h.userSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}

func (h *Handler) Credits(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	credits, err := h.userSvc.Credits(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(credits))
}

// SellPackage records an over-the-counter package sale for a client.
func (h *Handler) SellPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	var req model.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}

	u, err := h.bookingSvc.ConfirmPackagePurchase(c.Request.Context(), id, serviceID, req.Quantity)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("package sold", "user_id", id.String(), "service_id", serviceID.String(), "quantity", req.Quantity)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(u))
}
