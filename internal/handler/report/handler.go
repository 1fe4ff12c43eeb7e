package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/service/report"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	reportSvc *report.Service
	logger    *logger.Logger
}

func NewHandler(reportSvc *report.Service, logger *logger.Logger) *Handler {
	return &Handler{reportSvc: reportSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/sales", h.SalesSummary)
}

func (h *Handler) SalesSummary(c *gin.Context) {
	period := report.Period(c.DefaultQuery("period", string(report.Period30Days)))

	summary, err := h.reportSvc.Summarize(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}
