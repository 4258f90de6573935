package auth

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Identity is the verified caller decoded from a token. A value of this type
// only exists once a Verifier has accepted the request.
type Identity struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// HandlerFunc is an echo handler that requires a verified identity.
type HandlerFunc func(c echo.Context, id Identity) error

func identityFromClaims(claims *Claims) Identity {
	id := Identity{Email: claims.Email, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id
}
