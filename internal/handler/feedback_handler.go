package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/service"
)

// FeedbackHandler bundles feedback endpoints.
type FeedbackHandler struct {
	svc service.FeedbackService
	log *logger.Logger
}

// NewFeedbackHandler creates a feedback handler.
func NewFeedbackHandler(svc service.FeedbackService, log *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: log}
}

// FeedbackRequest is the body of a new review.
type FeedbackRequest struct {
	Name    string  `json:"name"`
	Photo   string  `json:"photo"`
	Rating  float64 `json:"rating" validate:"gte=0,lte=5"`
	Content string  `json:"content" validate:"required"`
}

// ListFeedback godoc
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} model.Feedback
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c echo.Context) error {
	feedback, err := h.svc.ListFeedback(c.Request().Context())
	if err != nil {
		return failed(h.log, "feedback.list", err)
	}
	return c.JSON(http.StatusOK, feedback)
}

// CreateFeedback godoc
// @Summary Leave feedback
// @Description The author email is taken from the token.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body FeedbackRequest true "Feedback"
// @Success 200 {object} repository.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c echo.Context, id auth.Identity) error {
	var req FeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.CreateFeedback(c.Request().Context(), &model.Feedback{
		Name:    req.Name,
		Email:   id.Email,
		Photo:   req.Photo,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		return failed(h.log, "feedback.create", err)
	}
	return c.JSON(http.StatusOK, res)
}
