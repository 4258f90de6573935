package service

import (
	"context"
	"fmt"
	"time"

	"campmed/internal/auth"
)

// AuthService handles token issue and logout.
type AuthService interface {
	IssueToken(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context, id auth.Identity) error
}

type authService struct {
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		jwtService: jwtService,
		tokenStore: tokenStore,
		now:        time.Now,
	}
}

// IssueToken signs a token for the caller-supplied email. No password is
// involved; the browser has already authenticated the user with its identity provider.
func (s *authService) IssueToken(_ context.Context, email string) (string, error) {
	token, err := s.jwtService.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, id auth.Identity) error {
	ttl := id.ExpiresAt.Sub(s.now())
	if err := s.tokenStore.Revoke(ctx, id.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
