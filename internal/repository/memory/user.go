package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/pkg/errors"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return errors.Conflict("email already registered", nil)
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.store.users[user.ID] = user.Clone()
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, errors.NotFound("user", nil)
	}
	return user.Clone(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, errors.NotFound("user", nil)
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return errors.NotFound("user", nil)
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = user.Clone()
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*model.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, u.Clone())
	}
	sortByCreation(users, func(u *model.User) time.Time { return u.CreatedAt })
	return users, nil
}
