package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository/memory"
)

func TestCreateDefaultsToClient(t *testing.T) {
	svc := NewService(memory.NewUserRepository(memory.NewStore()), "senha-demo")
	ctx := context.Background()

	u, err := svc.Create(ctx, &model.CreateUserRequest{Name: "Novo Cliente", Email: "novo@example.com"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleClient, u.Role)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestUpdateAppliesOnlyGivenFields(t *testing.T) {
	svc := NewService(memory.NewUserRepository(memory.NewStore()), "senha-demo")
	ctx := context.Background()

	u, err := svc.Create(ctx, &model.CreateUserRequest{Name: "Cliente", Email: "cliente@example.com", Phone: "(11) 90000-0000"})
	require.NoError(t, err)

	phone := "(11) 91111-1111"
	updated, err := svc.Update(ctx, u.ID, &model.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "(11) 91111-1111", updated.Phone)
	assert.Equal(t, "Cliente", updated.Name)
	assert.Equal(t, "cliente@example.com", updated.Email)
}

func TestCredits(t *testing.T) {
	store := memory.NewSeededStore()
	svc := NewService(memory.NewUserRepository(store), "senha-demo")
	ctx := context.Background()

	credits, err := svc.Credits(ctx, memory.UserCarlaID)
	require.NoError(t, err)
	assert.Equal(t, 5, credits[memory.ServiceMassageID])

	// a user with no balances gets an empty map, not nil
	credits, err = svc.Credits(ctx, memory.UserJoaoID)
	require.NoError(t, err)
	assert.NotNil(t, credits)
	assert.Empty(t, credits)

	_, err = svc.Credits(ctx, uuid.New())
	assert.Error(t, err)
}
