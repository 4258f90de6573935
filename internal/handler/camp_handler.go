package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/service"
)

// CampHandler bundles camp endpoints.
type CampHandler struct {
	svc service.CampService
	log *logger.Logger
}

// NewCampHandler creates a camp handler.
func NewCampHandler(svc service.CampService, log *logger.Logger) *CampHandler {
	return &CampHandler{svc: svc, log: log}
}

// ListCamps godoc
// @Summary List camps, most popular first
// @Tags camps
// @Produce json
// @Success 200 {array} model.Camp
// @Router /camps [get]
func (h *CampHandler) ListCamps(c echo.Context) error {
	camps, err := h.svc.ListCamps(c.Request().Context())
	if err != nil {
		return failed(h.log, "camps.list", err)
	}
	return c.JSON(http.StatusOK, camps)
}

// GetCamp godoc
// @Summary Get camp by id
// @Description Returns null when no camp has the id.
// @Tags camps
// @Produce json
// @Param id path string true "Camp ID"
// @Success 200 {object} model.Camp
// @Failure 400 {object} errors.ErrorResponse
// @Router /camp/{id} [get]
func (h *CampHandler) GetCamp(c echo.Context) error {
	camp, err := h.svc.GetCamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "camps.findById", err)
	}
	return c.JSON(http.StatusOK, camp)
}

// ListByOrganizer godoc
// @Summary List camps organised by an email
// @Tags camps
// @Produce json
// @Security BearerAuth
// @Param email query string false "Organiser email, defaults to the caller"
// @Success 200 {array} model.Camp
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /camp [get]
func (h *CampHandler) ListByOrganizer(c echo.Context, id auth.Identity) error {
	email := c.QueryParam("email")
	if email == "" {
		email = id.Email
	}

	camps, err := h.svc.ListByOrganizer(c.Request().Context(), email)
	if err != nil {
		return failed(h.log, "camps.findByOrganizer", err)
	}
	return c.JSON(http.StatusOK, camps)
}

// CreateCamp godoc
// @Summary Create camp
// @Tags camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param camp body model.Camp true "Camp"
// @Success 200 {object} repository.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /camps [post]
func (h *CampHandler) CreateCamp(c echo.Context, id auth.Identity) error {
	var camp model.Camp
	if err := c.Bind(&camp); err != nil {
		return invalidBody()
	}
	if camp.Email == "" {
		camp.Email = id.Email
	}

	res, err := h.svc.CreateCamp(c.Request().Context(), &camp)
	if err != nil {
		return failed(h.log, "camps.create", err)
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateCamp godoc
// @Summary Update camp fields
// @Description Only fields present in the body are changed. participantCount cannot be set.
// @Tags camps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Param camp body model.CampUpdate true "Fields to set"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /camp/{id} [patch]
func (h *CampHandler) UpdateCamp(c echo.Context, _ auth.Identity) error {
	var update model.CampUpdate
	if err := c.Bind(&update); err != nil {
		return invalidBody()
	}

	res, err := h.svc.UpdateCamp(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return failed(h.log, "camps.update", err)
	}
	return c.JSON(http.StatusOK, res)
}

// IncrementParticipants godoc
// @Summary Increment the participant counter of a camp
// @Tags camps
// @Produce json
// @Param id path string true "Camp ID"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /participant/{id} [put]
func (h *CampHandler) IncrementParticipants(c echo.Context) error {
	res, err := h.svc.IncrementParticipants(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "camps.increment", err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteCamp godoc
// @Summary Delete camp
// @Tags camps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Camp ID"
// @Success 200 {object} repository.DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /delete-camp/{id} [delete]
func (h *CampHandler) DeleteCamp(c echo.Context, _ auth.Identity) error {
	res, err := h.svc.DeleteCamp(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed(h.log, "camps.delete", err)
	}
	return c.JSON(http.StatusOK, res)
}
