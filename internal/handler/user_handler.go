package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/service"
)

// UserHandler bundles user endpoints.
type UserHandler struct {
	svc service.UserService
	log *logger.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

const userExistsMessage = "User already exists"

// CreateUserResponse is returned when the email is already registered.
type CreateUserResponse struct {
	Message    string `json:"message"`
	InsertedID any    `json:"insertedId"`
}

// AdminResponse reports whether the caller is an admin.
type AdminResponse struct {
	Admin bool `json:"admin"`
}

// GetUser godoc
// @Summary Find user by email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "User email"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetUser(c echo.Context, _ auth.Identity) error {
	user, err := h.svc.FindByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return failed(h.log, "users.findByEmail", err)
	}
	return c.JSON(http.StatusOK, user)
}

// CheckAdmin godoc
// @Summary Report whether the caller is an admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} AdminResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) CheckAdmin(c echo.Context, id auth.Identity) error {
	email := c.Param("email")
	if email != id.Email {
		h.log.AuthEvent("admin_check", id.Email, false, "email mismatch")
		return forbidden()
	}

	admin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return failed(h.log, "users.isAdmin", err)
	}
	return c.JSON(http.StatusOK, AdminResponse{Admin: admin})
}

// CreateUser godoc
// @Summary Create user on first sign-in
// @Description Inserts the user unless the email exists, in which case nothing is written.
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.User true "User payload"
// @Success 200 {object} repository.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var user model.User
	if err := bindAndValidate(c, &user); err != nil {
		return err
	}

	res, err := h.svc.CreateUser(c.Request().Context(), &user)
	if errors.Is(err, service.ErrUserAlreadyExists) {
		return c.JSON(http.StatusOK, CreateUserResponse{Message: userExistsMessage, InsertedID: nil})
	}
	if err != nil {
		return failed(h.log, "users.create", err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param profile body model.UserProfile true "Profile"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context, _ auth.Identity) error {
	var profile model.UserProfile
	if err := c.Bind(&profile); err != nil {
		return invalidBody()
	}

	res, err := h.svc.UpdateProfile(c.Request().Context(), c.Param("id"), profile)
	if err != nil {
		return failed(h.log, "users.updateProfile", err)
	}
	return c.JSON(http.StatusOK, res)
}
