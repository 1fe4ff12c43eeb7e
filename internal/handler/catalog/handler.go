package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/catalog"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	catalogSvc *catalog.Service
	logger     *logger.Logger
}

func NewHandler(catalogSvc *catalog.Service, logger *logger.Logger) *Handler {
	return &Handler{catalogSvc: catalogSvc, logger: logger}
}

// RegisterPublicRoutes exposes the read-only catalog.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/professionals", h.ListProfessionals)
	rg.GET("/professionals/:id", h.GetProfessional)
}

// RegisterAdminRoutes exposes catalog management.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.catalogSvc.ListServices(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(services))
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}

	svc, err := h.catalogSvc.GetService(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(svc))
}

func (h *Handler) CreateService(c *gin.Context) {
	var req model.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	svc, err := h.catalogSvc.CreateService(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("service created", "service_id", svc.ID.String(), "name", svc.Name)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(svc))
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}

	var req model.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	svc, err := h.catalogSvc.UpdateService(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(svc))
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}

	if err := h.catalogSvc.DeleteService(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("service deleted", "service_id", id.String())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"message": "service deleted"}))
}

func (h *Handler) ListProfessionals(c *gin.Context) {
	professionals, err := h.catalogSvc.ListProfessionals(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(professionals))
}

func (h *Handler) GetProfessional(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid professional ID"))
		return
	}

	prof, err := h.catalogSvc.GetProfessional(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(prof))
}
