package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bellezapura/salon-api/internal/model"
)

func TestCredit(t *testing.T) {
	svc := NewService()
	serviceID := uuid.New()
	user := &model.User{Name: "Carla"}

	updated := svc.Credit(user, serviceID, 10, 1)
	assert.Equal(t, 10, svc.Balance(updated, serviceID))

	updated = svc.Credit(updated, serviceID, 10, 2)
	assert.Equal(t, 30, svc.Balance(updated, serviceID))

	// original is never touched
	assert.Zero(t, svc.Balance(user, serviceID))
}

func TestCreditSingleSessionService(t *testing.T) {
	svc := NewService()
	serviceID := uuid.New()
	user := &model.User{}

	updated := svc.Credit(user, serviceID, 1, 3)
	assert.Equal(t, 3, svc.Balance(updated, serviceID))
}

func TestDebit(t *testing.T) {
	svc := NewService()
	serviceID := uuid.New()
	user := &model.User{Credits: map[uuid.UUID]int{serviceID: 5}}

	updated := svc.Debit(user, serviceID, 1)
	assert.Equal(t, 4, svc.Balance(updated, serviceID))
	assert.Equal(t, 5, svc.Balance(user, serviceID))
}

func TestDebitFloorsAtZero(t *testing.T) {
	svc := NewService()
	serviceID := uuid.New()
	user := &model.User{Credits: map[uuid.UUID]int{serviceID: 2}}

	updated := svc.Debit(user, serviceID, 5)
	assert.Zero(t, svc.Balance(updated, serviceID))

	updated = svc.Debit(&model.User{}, serviceID, 1)
	assert.Zero(t, svc.Balance(updated, serviceID))
}

func TestBalanceIndependentPerService(t *testing.T) {
	svc := NewService()
	a, b := uuid.New(), uuid.New()
	user := &model.User{Credits: map[uuid.UUID]int{a: 5}}

	updated := svc.Debit(user, a, 1)
	assert.Equal(t, 4, svc.Balance(updated, a))
	assert.Zero(t, svc.Balance(updated, b))
}
