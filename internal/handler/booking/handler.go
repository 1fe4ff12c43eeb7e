package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/handler"
	"github.com/bellezapura/salon-api/internal/middleware"
	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/service/booking"
	"github.com/bellezapura/salon-api/pkg/logger"
)

type Handler struct {
	bookingSvc *booking.Service
	logger     *logger.Logger
}

func NewHandler(bookingSvc *booking.Service, logger *logger.Logger) *Handler {
	return &Handler{bookingSvc: bookingSvc, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/purchases", h.Purchase)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id/reschedule", h.Reschedule)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/review", h.Review)
}

// RegisterAdminRoutes exposes the front-desk completion action.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/complete", h.Complete)
}

// Purchase classifies the request and, for packages, grants the credits
// immediately. A single purchase only reports its classification: the
// client follows up with a booking once a slot is chosen.
func (h *Handler) Purchase(c *gin.Context) {
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
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing credentials"))
		return
	}

	svc, err := h.bookingSvc.GetService(c.Request.Context(), serviceID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	kind := h.bookingSvc.ClassifyRequest(svc, req.Quantity)
	if kind == booking.SinglePurchase {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"kind": kind}))
		return
	}

	user, err := h.bookingSvc.ConfirmPackagePurchase(c.Request.Context(), claims.UserID, serviceID, req.Quantity)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("package purchased", "user_id", claims.UserID.String(), "service_id", serviceID.String(), "quantity", req.Quantity)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"kind": kind, "user": user}))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
		return
	}
	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid professional ID"))
		return
	}
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing credentials"))
		return
	}

	b, err := h.bookingSvc.ConfirmNewBooking(c.Request.Context(), claims.UserID, serviceID, professionalID, req.Date, req.FromCredit)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("booking created", "booking_id", b.ID.String(), "from_credit", b.FromCredit)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.bookingSvc.GetBooking(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

// List returns the caller's bookings; admins see everyone's and may filter
// by user, professional or status.
func (h *Handler) List(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing credentials"))
		return
	}

	filters := &model.BookingFilters{
		Status: model.BookingStatus(c.Query("status")),
	}
	if claims.Role == model.RoleAdmin {
		if raw := c.Query("user_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
				return
			}
			filters.UserID = id
		}
		if raw := c.Query("professional_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid professional ID"))
				return
			}
			filters.ProfessionalID = id
		}
	} else {
		filters.UserID = claims.UserID
	}

	bookings, err := h.bookingSvc.ListBookings(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	var req model.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	professionalID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid professional ID"))
		return
	}

	b, err := h.bookingSvc.Reschedule(c.Request.Context(), id, req.Date, professionalID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("booking rescheduled", "booking_id", b.ID.String())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.bookingSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	h.logger.Info("booking canceled", "booking_id", b.ID.String())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	b, err := h.bookingSvc.Complete(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	var req model.ReviewBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	b, err := h.bookingSvc.RecordReview(c.Request.Context(), id, req.Rating, req.Comment)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}
