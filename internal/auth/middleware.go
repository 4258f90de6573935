package auth

import (
	"context"
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "campmed/internal/errors"
	"campmed/internal/logger"
	"campmed/internal/model"
)

const identityContextKey = "identity"

// ErrTokenRevoked is returned when a valid token was revoked by logout.
var ErrTokenRevoked = errors.New("token revoked")

// Verifier checks the bearer token of a request and hands the decoded
// identity to the wrapped handler.
type Verifier struct {
	jwt    *JWTService
	tokens TokenStoreInterface
	log    *logger.Logger
	mw     echo.MiddlewareFunc
}

// NewVerifier builds a verifier on top of echo-jwt. tokens may be nil to skip
// revocation checks.
func NewVerifier(jwtService *JWTService, tokens TokenStoreInterface, log *logger.Logger) *Verifier {
	v := &Verifier{jwt: jwtService, tokens: tokens, log: log}
	v.mw = echojwt.WithConfig(echojwt.Config{
		ContextKey:     identityContextKey,
		TokenLookup:    "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: v.parseToken,
		ErrorHandler:   v.reject,
	})
	return v
}

// Authenticate adapts an identity-aware handler into an echo handler guarded
// by token verification.
func (v *Verifier) Authenticate(next HandlerFunc) echo.HandlerFunc {
	return v.mw(func(c echo.Context) error {
		id, ok := c.Get(identityContextKey).(Identity)
		if !ok {
			return unauthorized()
		}
		return next(c, id)
	})
}

func (v *Verifier) parseToken(c echo.Context, raw string) (any, error) {
	claims, err := v.jwt.ValidateToken(raw)
	if err != nil {
		return nil, err
	}

	if v.tokens != nil {
		revoked, _ := v.tokens.IsRevoked(c.Request().Context(), claims.ID)
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return identityFromClaims(claims), nil
}

func (v *Verifier) reject(c echo.Context, err error) error {
	v.log.AuthEvent("verify", "", false, err.Error())
	return unauthorized()
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Message: apperrors.MessageUnauthorized,
	})
}

// UserLookup finds a user by email.
type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authorizer gates handlers on the role stored for the verified identity.
type Authorizer struct {
	users UserLookup
	log   *logger.Logger
}

// NewAuthorizer creates a new role authorizer.
func NewAuthorizer(users UserLookup, log *logger.Logger) *Authorizer {
	return &Authorizer{users: users, log: log}
}

// RequireAdmin performs one user lookup per call and rejects the request
// unless the stored role is admin.
func (a *Authorizer) RequireAdmin(next HandlerFunc) HandlerFunc {
	return func(c echo.Context, id Identity) error {
		user, err := a.users.FindByEmail(c.Request().Context(), id.Email)
		if err != nil {
			a.log.DatabaseError("users.findByEmail", err)
			httpErr := apperrors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if !user.IsAdmin() {
			a.log.AuthEvent("authorize", id.Email, false, "not admin")
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Message: apperrors.MessageForbidden,
			})
		}
		return next(c, id)
	}
}
