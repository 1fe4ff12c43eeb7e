package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Booking is a scheduled appointment. Date carries both the calendar date
// and the time of day of the appointment start. Duration, when zero,
// inherits the referenced service's duration at lookup time. Rating and
// Comment are settable once, only after completion.
type Booking struct {
	Base
	UserID         uuid.UUID     `json:"user_id"`
	ServiceID      uuid.UUID     `json:"service_id"`
	ProfessionalID uuid.UUID     `json:"professional_id"`
	Date           time.Time     `json:"date"`
	Status         BookingStatus `json:"status"`
	FromCredit     bool          `json:"from_credit,omitempty"`
	Duration       int           `json:"duration,omitempty"` // minutes, overrides service duration
	Rating         int           `json:"rating,omitempty"`
	Comment        string        `json:"comment,omitempty"`
}

// Clone returns a copy safe to hand to callers.
func (b *Booking) Clone() *Booking {
	cp := *b
	return &cp
}

// EffectiveDuration resolves the booking's duration against its service.
func (b *Booking) EffectiveDuration(svc *Service) int {
	if b.Duration > 0 {
		return b.Duration
	}
	return svc.Duration
}

type CreateBookingRequest struct {
	ServiceID      string    `json:"service_id" binding:"required,uuid"`
	ProfessionalID string    `json:"professional_id" binding:"required,uuid"`
	Date           time.Time `json:"date" binding:"required,halfhour"`
	FromCredit     bool      `json:"from_credit"`
}

type RescheduleBookingRequest struct {
	Date           time.Time `json:"date" binding:"required,halfhour"`
	ProfessionalID string    `json:"professional_id" binding:"required,uuid"`
}

type ReviewBookingRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type PurchaseRequest struct {
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gte=1"`
}

type BookingFilters struct {
	UserID         uuid.UUID
	ProfessionalID uuid.UUID
	Status         BookingStatus
	StartDate      time.Time
	EndDate        time.Time
}
