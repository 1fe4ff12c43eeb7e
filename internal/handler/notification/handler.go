package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/notification"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	notificationSvc *notification.Service
	logger          *logger.Logger
}

func NewHandler(notificationSvc *notification.Service, logger *logger.Logger) *Handler {
	return &Handler{notificationSvc: notificationSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications/reminders", h.GetSettings)
	rg.PUT("/notifications/reminders", h.UpdateSettings)
	rg.GET("/notifications/reminders/preview/:bookingId", h.Preview)
	rg.POST("/notifications/reminders/test", h.SendTest)
}

func (h *Handler) GetSettings(c *gin.Context) {
	settings := h.notificationSvc.Settings(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(settings))
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req model.UpdateReminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	settings, err := h.notificationSvc.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("reminder settings updated", "enabled", settings.Enabled)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(settings))
}

func (h *Handler) Preview(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	body, err := h.notificationSvc.RenderForBooking(c.Request.Context(), bookingID)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"body": body}))
}

type sendTestRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	To        string `json:"to" binding:"required,email"`
}

func (h *Handler) SendTest(c *gin.Context) {
	var req sendTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	if err := h.notificationSvc.SendTest(c.Request.Context(), bookingID, req.To); err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("test reminder sent", "booking_id", bookingID.String(), "to", req.To)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"message": "test reminder sent"}))
}
