package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/pkg/errors"
)

type ServiceRepository struct {
	store *Store
}

func NewServiceRepository(store *Store) *ServiceRepository {
	return &ServiceRepository{store: store}
}

func (r *ServiceRepository) Create(ctx context.Context, service *model.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	cp := *service
	r.store.services[service.ID] = &cp
	return nil
}

func (r *ServiceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	service, ok := r.store.services[id]
	if !ok {
		return nil, errors.NotFound("service", nil)
	}
	cp := *service
	return &cp, nil
}

func (r *ServiceRepository) Update(ctx context.Context, service *model.Service) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.services[service.ID]; !ok {
		return errors.NotFound("service", nil)
	}
	service.UpdatedAt = time.Now()
	cp := *service
	r.store.services[service.ID] = &cp
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.services[id]; !ok {
		return errors.NotFound("service", nil)
	}
	delete(r.store.services, id)
	return nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	services := make([]*model.Service, 0, len(r.store.services))
	for _, s := range r.store.services {
		cp := *s
		services = append(services, &cp)
	}
	sortByCreation(services, func(s *model.Service) time.Time { return s.CreatedAt })
	return services, nil
}
