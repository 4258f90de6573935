package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campmed/internal/auth"
)

func TestAuthService_IssueToken(t *testing.T) {
	jwtService, err := auth.NewJWTService("test-secret")
	require.NoError(t, err)

	service := NewAuthService(jwtService, new(MockTokenStore))
	token, err := service.IssueToken(context.Background(), "a@b.com")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
}

func TestAuthService_Logout(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id := auth.Identity{Email: "a@b.com", TokenID: "jti-1", ExpiresAt: now.Add(40 * time.Minute)}

	tests := []struct {
		name          string
		storeErr      error
		expectedError bool
	}{
		{name: "revokes for remaining lifetime"},
		{name: "store failure", storeErr: errors.New("boom"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService, err := auth.NewJWTService("test-secret")
			require.NoError(t, err)
			store := new(MockTokenStore)
			store.On("Revoke", mock.Anything, "jti-1", 40*time.Minute).Return(tt.storeErr)

			service := NewAuthService(jwtService, store).(*authService)
			service.now = func() time.Time { return now }

			err = service.Logout(context.Background(), id)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}
