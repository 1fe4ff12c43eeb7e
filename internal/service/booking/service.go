// Package booking governs how a service selection becomes a Booking and
// every state change after that. It is the only writer of the booking
// collection, and credit balances only change through it.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository"
	"github.com/bellezapura/salon-api/internal/service/ledger"
	"github.com/bellezapura/salon-api/pkg/errors"
	"github.com/bellezapura/salon-api/pkg/metrics"
)

const minReviewCommentLen = 10

// PurchaseKind classifies what a service selection turns into before any
// professional or time slot is chosen.
type PurchaseKind string

const (
	// SinglePurchase reserves one slot and is paid on the spot.
	SinglePurchase PurchaseKind = "single"
	// PackagePurchase grants session credits and never asks for a date.
	PackagePurchase PurchaseKind = "package"
)

// Config carries the explicit policy knobs. RefundCreditOnCancel is off by
// default: canceling a credit-funded booking forfeits the redeemed credit.
type Config struct {
	RefundCreditOnCancel bool
}

type Service struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	profRepo    repository.ProfessionalRepository
	saleRepo    repository.SaleRepository
	ledger      *ledger.Service
	metrics     *metrics.Metrics
	cfg         Config
}

func NewService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	profRepo repository.ProfessionalRepository,
	saleRepo repository.SaleRepository,
	ledgerSvc *ledger.Service,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		profRepo:    profRepo,
		saleRepo:    saleRepo,
		ledger:      ledgerSvc,
		metrics:     m,
		cfg:         cfg,
	}
}

// ClassifyRequest decides the purchase path: a package whenever the service
// itself is a multi-session package or the user asks for more than one unit.
func (s *Service) ClassifyRequest(svc *model.Service, quantity int) PurchaseKind {
	if svc.Sessions > 1 || quantity > 1 {
		return PackagePurchase
	}
	return SinglePurchase
}

// ConfirmPackagePurchase grants credits for quantity units of the service
// and records the sale. It creates no booking: redeeming the credits into
// slots happens later, one ConfirmNewBooking at a time.
func (s *Service) ConfirmPackagePurchase(ctx context.Context, userID, serviceID uuid.UUID, quantity int) (*model.User, error) {
	if quantity < 1 {
		return nil, errors.Validation("quantity", "must be at least 1")
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	svc, err := s.serviceRepo.Get(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	granted := svc.SessionsPerUnit() * quantity
	updated := s.ledger.Credit(user, svc.ID, svc.SessionsPerUnit(), quantity)
	if err := s.userRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save credits: %w", err)
	}

	if err := s.recordSale(ctx, svc, user, svc.Price*float64(quantity)); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CreditsGranted.Add(float64(granted))
	}
	return updated, nil
}

// ConfirmNewBooking reserves a slot with a professional. A credit-funded
// booking debits one credit and produces no sale; a paid booking records
// the sale at the service's current price.
func (s *Service) ConfirmNewBooking(ctx context.Context, userID, serviceID, professionalID uuid.UUID, date time.Time, fromCredit bool) (*model.Booking, error) {
	if date.IsZero() {
		return nil, errors.Validation("date", "is required")
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	svc, err := s.serviceRepo.Get(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if _, err := s.profRepo.Get(ctx, professionalID); err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	booking := &model.Booking{
		UserID:         user.ID,
		ServiceID:      svc.ID,
		ProfessionalID: professionalID,
		Date:           date,
		Status:         model.BookingStatusConfirmed,
		FromCredit:     fromCredit,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	funding := "paid"
	if fromCredit {
		funding = "credit"
		updated := s.ledger.Debit(user, svc.ID, 1)
		if err := s.userRepo.Update(ctx, updated); err != nil {
			return nil, fmt.Errorf("failed to save credits: %w", err)
		}
		if s.metrics != nil {
			s.metrics.CreditsDebited.Inc()
		}
	} else {
		if err := s.recordSale(ctx, svc, user, svc.Price); err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.WithLabelValues(funding).Inc()
	}
	return booking, nil
}

// Reschedule moves a confirmed booking to a new date and professional.
// Identity, owner, service and status are preserved.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, newDate time.Time, newProfessionalID uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.Status != model.BookingStatusConfirmed {
		return nil, errors.Conflict(fmt.Sprintf("cannot reschedule a %s booking", booking.Status), nil)
	}
	if _, err := s.profRepo.Get(ctx, newProfessionalID); err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	booking.Date = newDate
	booking.ProfessionalID = newProfessionalID
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// Cancel moves a confirmed booking to its terminal canceled state. The
// debited credit is not restored unless RefundCreditOnCancel is set.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.Status == model.BookingStatusCanceled {
		return nil, errors.Conflict("booking is already canceled", nil)
	}
	if booking.Status == model.BookingStatusCompleted {
		return nil, errors.Conflict("cannot cancel a completed booking", nil)
	}

	booking.Status = model.BookingStatusCanceled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if s.cfg.RefundCreditOnCancel && booking.FromCredit {
		if err := s.refundCredit(ctx, booking); err != nil {
			return nil, err
		}
	}

	if s.metrics != nil {
		s.metrics.BookingsCanceled.Inc()
	}
	return booking, nil
}

// Complete marks a confirmed booking as completed. In production this is
// driven by the front desk once the client has been seen.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.Status != model.BookingStatusConfirmed {
		return nil, errors.Conflict(fmt.Sprintf("cannot complete a %s booking", booking.Status), nil)
	}

	booking.Status = model.BookingStatusCompleted
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// RecordReview attaches a one-time rating and comment to a completed
// booking. Malformed reviews are rejected with a field-level reason.
func (s *Service) RecordReview(ctx context.Context, id uuid.UUID, rating int, comment string) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if booking.Status != model.BookingStatusCompleted {
		return nil, errors.Conflict("only completed bookings can be reviewed", nil)
	}
	if booking.Rating != 0 {
		return nil, errors.Conflict("booking has already been reviewed", nil)
	}
	if rating < 1 || rating > 5 {
		return nil, errors.Validation("rating", "must be between 1 and 5")
	}
	if len([]rune(comment)) < minReviewCommentLen {
		return nil, errors.Validation("comment", fmt.Sprintf("must be at least %d characters", minReviewCommentLen))
	}

	booking.Rating = rating
	booking.Comment = comment
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsReviewed.Inc()
	}
	return booking, nil
}

// GetService resolves a catalog entry so callers can classify a purchase
// before committing to either path.
func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	svc, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

func (s *Service) ListBookings(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) recordSale(ctx context.Context, svc *model.Service, user *model.User, amount float64) error {
	sale := &model.Sale{
		ServiceName: svc.Name,
		ClientName:  user.Name,
		Amount:      amount,
		Date:        time.Now(),
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}
	if s.metrics != nil {
		s.metrics.SalesRecorded.Inc()
		s.metrics.SalesRevenue.Add(amount)
	}
	return nil
}

func (s *Service) refundCredit(ctx context.Context, booking *model.Booking) error {
	user, err := s.userRepo.Get(ctx, booking.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	updated := s.ledger.Credit(user, booking.ServiceID, 1, 1)
	if err := s.userRepo.Update(ctx, updated); err != nil {
		return fmt.Errorf("failed to restore credit: %w", err)
	}
	return nil
}
