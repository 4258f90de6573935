package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/service"
)

// ParticipantHandler bundles registration endpoints.
type ParticipantHandler struct {
	svc service.ParticipantService
	log *logger.Logger
}

// NewParticipantHandler creates a participant handler.
func NewParticipantHandler(svc service.ParticipantService, log *logger.Logger) *ParticipantHandler {
	return &ParticipantHandler{svc: svc, log: log}
}

// RenameRequest carries the new participant name.
type RenameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListParticipants godoc
// @Summary List every registration
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Participant
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /participant-camp [get]
func (h *ParticipantHandler) ListParticipants(c echo.Context, _ auth.Identity) error {
	participants, err := h.svc.ListParticipants(c.Request().Context())
	if err != nil {
		return failed(h.log, "participants.list", err)
	}
	return c.JSON(http.StatusOK, participants)
}

// ListByEmail godoc
// @Summary List registrations of an email
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param email query string false "Participant email, defaults to the caller"
// @Success 200 {array} model.Participant
// @Failure 401 {object} errors.ErrorResponse
// @Router /participant [get]
func (h *ParticipantHandler) ListByEmail(c echo.Context, id auth.Identity) error {
	email := c.QueryParam("email")
	if email == "" {
		email = id.Email
	}

	participants, err := h.svc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return failed(h.log, "participants.findByEmail", err)
	}
	return c.JSON(http.StatusOK, participants)
}

// GetParticipant godoc
// @Summary Get registration by id
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} model.Participant
// @Failure 400 {object} errors.ErrorResponse
// @Router /participants/{id} [get]
func (h *ParticipantHandler) GetParticipant(c echo.Context) error {
	participant, err := h.svc.GetParticipant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "participants.findById", err)
	}
	return c.JSON(http.StatusOK, participant)
}

// Register godoc
// @Summary Register for a camp
// @Description Status fields are always stored as unpaid and unconfirmed.
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body model.Participant true "Registration"
// @Success 200 {object} repository.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /participant [post]
func (h *ParticipantHandler) Register(c echo.Context) error {
	var participant model.Participant
	if err := c.Bind(&participant); err != nil {
		return invalidBody()
	}

	res, err := h.svc.Register(c.Request().Context(), &participant)
	if err != nil {
		return failed(h.log, "participants.create", err)
	}
	return c.JSON(http.StatusOK, res)
}

// RenameByEmail godoc
// @Summary Rename every registration of an email
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "Participant email"
// @Param request body RenameRequest true "New name"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /participant/{email} [patch]
func (h *ParticipantHandler) RenameByEmail(c echo.Context, _ auth.Identity) error {
	var req RenameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.RenameByEmail(c.Request().Context(), c.Param("email"), req.Name)
	if err != nil {
		return failed(h.log, "participants.rename", err)
	}
	return c.JSON(http.StatusOK, res)
}

// MarkPaid godoc
// @Summary Mark a registration paid
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant ID"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /participants/{id} [patch]
func (h *ParticipantHandler) MarkPaid(c echo.Context, _ auth.Identity) error {
	res, err := h.svc.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "participants.markPaid", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Confirm godoc
// @Summary Confirm a registration
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param confirmId path string true "Participant ID"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /update-participant/{confirmId} [patch]
func (h *ParticipantHandler) Confirm(c echo.Context, _ auth.Identity) error {
	res, err := h.svc.Confirm(c.Request().Context(), c.Param("confirmId"))
	if err != nil {
		return failed(h.log, "participants.confirm", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Cancel godoc
// @Summary Delete a registration
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Participant ID"
// @Success 200 {object} repository.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /participant-camp/{id} [delete]
func (h *ParticipantHandler) Cancel(c echo.Context, _ auth.Identity) error {
	res, err := h.svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "participants.delete", err)
	}
	return c.JSON(http.StatusOK, res)
}
