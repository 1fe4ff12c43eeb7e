package calendar

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/service/calendar"
	"github.com/bellezapura/salon-api/pkg/logger"
)

const dateLayout = "2006-01-02"

type Handler struct {
	calendarSvc *calendar.Service
	logger      *logger.Logger
}

func NewHandler(calendarSvc *calendar.Service, logger *logger.Logger) *Handler {
	return &Handler{calendarSvc: calendarSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar", h.Agenda)
	rg.GET("/calendar/slots", h.Slots)
	rg.GET("/calendar/navigate", h.Navigate)
}

func (h *Handler) Agenda(c *gin.Context) {
	date, granularity, ok := h.parseQuery(c)
	if !ok {
		return
	}

	view, err := h.calendarSvc.Agenda(c.Request.Context(), date, granularity)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(view))
}

func (h *Handler) Slots(c *gin.Context) {
	date, granularity, ok := h.parseQuery(c)
	if !ok {
		return
	}

	days, err := h.calendarSvc.VisibleSlots(date, granularity)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(days))
}

func (h *Handler) Navigate(c *gin.Context) {
	date, granularity, ok := h.parseQuery(c)
	if !ok {
		return
	}

	direction := calendar.Direction(c.DefaultQuery("direction", string(calendar.DirectionToday)))
	switch direction {
	case calendar.DirectionPrev, calendar.DirectionNext, calendar.DirectionToday:
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid direction"))
		return
	}

	next := calendar.Navigate(date, granularity, direction)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"date": next.Format(dateLayout)}))
}

func (h *Handler) parseQuery(c *gin.Context) (time.Time, calendar.Granularity, bool) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date, expected YYYY-MM-DD"))
			return time.Time{}, "", false
		}
		date = parsed
	}

	granularity := calendar.Granularity(c.DefaultQuery("granularity", string(calendar.GranularityDay)))
	return date, granularity, true
}
