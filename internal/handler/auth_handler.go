package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/logger"
	"campmed/internal/service"
)

// AuthHandler handles token endpoints.
type AuthHandler struct {
	authService service.AuthService
	log         *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// TokenRequest represents a token issue request.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse represents an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Signs a one-hour token for the email of a user already signed in with the identity provider.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.IssueToken(c.Request().Context(), req.Email)
	if err != nil {
		return failed(h.log, "auth.issue", err)
	}

	h.log.AuthEvent("issue", req.Email, true, "")
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context, id auth.Identity) error {
	if err := h.authService.Logout(c.Request().Context(), id); err != nil {
		return failed(h.log, "auth.logout", err)
	}

	h.log.AuthEvent("logout", id.Email, true, "")
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}
