// Package auth implements the demo login flow: password check against the
// seeded accounts, a signed access token, and a revocable session record.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository"
	pkgauth "github.com/bellezapura/salon-api/pkg/auth"
	"github.com/bellezapura/salon-api/pkg/errors"
)

type Service struct {
	userRepo repository.UserRepository
	jwt      pkgauth.JWTService
	expiry   time.Duration

	// sessions maps token to user ID so logout can revoke before expiry
	sessions *cache.Cache
}

func NewService(userRepo repository.UserRepository, jwtSvc pkgauth.JWTService, expiry time.Duration) *Service {
	return &Service{
		userRepo: userRepo,
		jwt:      jwtSvc,
		expiry:   expiry,
		sessions: cache.New(expiry, 10*time.Minute),
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password collapse into the same error so the endpoint does not
// reveal which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Unauthorized("invalid credentials", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("invalid credentials", err)
	}

	token, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	s.sessions.Set(token, user.ID.String(), s.expiry)

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.expiry.Seconds()),
		User:        user,
	}, nil
}

// Validate checks signature, expiry and that the session has not been
// revoked by logout.
func (s *Service) Validate(token string) (*model.TokenClaims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, errors.Unauthorized("invalid token", err)
	}
	if _, ok := s.sessions.Get(token); !ok {
		return nil, errors.Unauthorized("session expired", nil)
	}
	return claims, nil
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}
