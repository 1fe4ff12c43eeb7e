// Package ledger tracks redeemable session credits per user per service.
// Operations are pure: they never mutate their argument and always return
// a fresh User value for the caller to persist.
package ledger

import (
	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Credit grants sessionsPerUnit×units credits for the given service.
// Both arguments must already be validated >= 1 by the caller.
func (s *Service) Credit(user *model.User, serviceID uuid.UUID, sessionsPerUnit, units int) *model.User {
	updated := user.Clone()
	if updated.Credits == nil {
		updated.Credits = make(map[uuid.UUID]int)
	}
	updated.Credits[serviceID] += sessionsPerUnit * units
	return updated
}

// Debit consumes credits for the given service, flooring at zero: debiting
// past the balance clamps rather than failing, so a negative balance can
// never be observed.
func (s *Service) Debit(user *model.User, serviceID uuid.UUID, amount int) *model.User {
	updated := user.Clone()
	if updated.Credits == nil {
		updated.Credits = make(map[uuid.UUID]int)
	}
	balance := updated.Credits[serviceID] - amount
	if balance < 0 {
		balance = 0
	}
	updated.Credits[serviceID] = balance
	return updated
}

// Balance reads the current credit count, zero when absent.
func (s *Service) Balance(user *model.User, serviceID uuid.UUID) int {
	if user.Credits == nil {
		return 0
	}
	return user.Credits[serviceID]
}
