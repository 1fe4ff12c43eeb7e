package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/pkg/errors"
)

// ProfessionalRepository is read-only: the roster is seed data with no
// lifecycle beyond startup.
type ProfessionalRepository struct {
	store *Store
}

func NewProfessionalRepository(store *Store) *ProfessionalRepository {
	return &ProfessionalRepository{store: store}
}

func (r *ProfessionalRepository) Get(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	professional, ok := r.store.professionals[id]
	if !ok {
		return nil, errors.NotFound("professional", nil)
	}
	cp := *professional
	return &cp, nil
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]*model.Professional, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	professionals := make([]*model.Professional, 0, len(r.store.professionals))
	for _, p := range r.store.professionals {
		cp := *p
		professionals = append(professionals, &cp)
	}
	sortByCreation(professionals, func(p *model.Professional) time.Time { return p.CreatedAt })
	return professionals, nil
}
