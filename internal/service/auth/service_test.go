package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository/memory"
	pkgauth "github.com/bellezapura/salon-api/pkg/auth"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store := memory.NewSeededStore()
	return NewService(memory.NewUserRepository(store), pkgauth.NewJWTService("test-secret", time.Hour), time.Hour)
}

func TestLogin(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Login(context.Background(), "carla.mendes@example.com", memory.DemoPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "Carla Mendes", resp.User.Name)

	claims, err := svc.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, memory.UserCarlaID, claims.UserID)
	assert.Equal(t, model.RoleClient, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "carla.mendes@example.com", "wrong")
	assert.Error(t, err)

	_, err = svc.Login(ctx, "nobody@example.com", memory.DemoPassword)
	assert.Error(t, err)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Login(context.Background(), "admin@bellezapura.com", memory.DemoPassword)
	require.NoError(t, err)

	_, err = svc.Validate(resp.AccessToken)
	require.NoError(t, err)

	svc.Logout(resp.AccessToken)
	_, err = svc.Validate(resp.AccessToken)
	assert.Error(t, err)
}
