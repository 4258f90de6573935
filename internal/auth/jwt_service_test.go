package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	svc := newTestJWT(t)
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken("a@b.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, issuedAt.Add(time.Hour), claims.ExpiresAt.Time)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	svc := newTestJWT(t)

	first, err := svc.GenerateToken("a@b.com")
	require.NoError(t, err)
	second, err := svc.GenerateToken("a@b.com")
	require.NoError(t, err)

	c1, _ := svc.ValidateToken(first)
	c2, _ := svc.ValidateToken(second)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newTestJWT(t)
	valid, err := svc.GenerateToken("a@b.com")
	require.NoError(t, err)

	other, err := NewJWTService("other-secret")
	require.NoError(t, err)
	foreign, err := other.GenerateToken("a@b.com")
	require.NoError(t, err)

	expired := newTestJWT(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := expired.GenerateToken("a@b.com")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"tampered", valid[:len(valid)-2] + "xx"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"unsigned", none},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
