package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserRepository handles user records. Implementations must return
	// copies: callers never alias stored state, all mutation goes through
	// Update with a fresh value.
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		List(ctx context.Context) ([]*model.User, error)
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		Update(ctx context.Context, service *model.Service) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Service, error)
	}

	ProfessionalRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Professional, error)
		List(ctx context.Context) ([]*model.Professional, error)
	}

	BookingRepository interface {
		Create(ctx context.Context, booking *model.Booking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
		Update(ctx context.Context, booking *model.Booking) error
		List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error)
	}

	SaleRepository interface {
		Create(ctx context.Context, sale *model.Sale) error
		List(ctx context.Context) ([]*model.Sale, error)
	}
)
