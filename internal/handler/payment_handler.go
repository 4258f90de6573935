package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/auth"
	"campmed/internal/errors"
	"campmed/internal/logger"
	"campmed/internal/model"
	"campmed/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	log            *logger.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, log: log}
}

// PaymentIntentRequest represents a payment intent request.
type PaymentIntentRequest struct {
	CampID string   `json:"campId" validate:"required"`
	Price  *float64 `json:"price"`
}

// PaymentIntentResponse carries the secret the browser confirms the card with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentRequest is the record of a completed charge.
type PaymentRequest struct {
	Price         float64 `json:"price" validate:"gt=0"`
	CampID        string  `json:"campId" validate:"required"`
	ParticipantID string  `json:"participantId"`
	TransactionID string  `json:"transactionId" validate:"required"`
	Date          string  `json:"date"`
}

// CreatePaymentIntent godoc
// @Summary Create a payment intent for a camp fee
// @Description The amount is the camp fee. A price, if sent, must equal the fee.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Camp to pay for"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.Request().Context(), req.CampID, req.Price)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode >= http.StatusInternalServerError {
			h.log.GatewayError("payment_intents.create", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// RecordPayment godoc
// @Summary Record a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment"
// @Success 200 {object} repository.InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /payment [post]
func (h *PaymentHandler) RecordPayment(c echo.Context, id auth.Identity) error {
	var req PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.paymentService.RecordPayment(c.Request().Context(), &model.Payment{
		Email:         id.Email,
		Price:         req.Price,
		CampID:        req.CampID,
		ParticipantID: req.ParticipantID,
		TransactionID: req.TransactionID,
		Date:          req.Date,
	})
	if err != nil {
		return failed(h.log, "payments.create", err)
	}
	return c.JSON(http.StatusOK, res)
}
