package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/pkg/errors"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	r.store.bookings[booking.ID] = booking.Clone()
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, errors.NotFound("booking", nil)
	}
	return booking.Clone(), nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[booking.ID]; !ok {
		return errors.NotFound("booking", nil)
	}
	booking.UpdatedAt = time.Now()
	r.store.bookings[booking.ID] = booking.Clone()
	return nil
}

func (r *BookingRepository) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bookings := make([]*model.Booking, 0, len(r.store.bookings))
	for _, b := range r.store.bookings {
		if !matchesFilters(b, filters) {
			continue
		}
		bookings = append(bookings, b.Clone())
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].Date.Before(bookings[j].Date)
	})
	return bookings, nil
}

func matchesFilters(b *model.Booking, f *model.BookingFilters) bool {
	if f == nil {
		return true
	}
	if f.UserID != uuid.Nil && b.UserID != f.UserID {
		return false
	}
	if f.ProfessionalID != uuid.Nil && b.ProfessionalID != f.ProfessionalID {
		return false
	}
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if !f.StartDate.IsZero() && b.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && b.Date.After(f.EndDate) {
		return false
	}
	return true
}
