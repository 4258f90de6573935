package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidID is returned when a path identifier is not a valid document id.
	ErrInvalidID = errors.New("invalid id")
	// ErrCampNotFound is returned when a camp required by an operation does not exist.
	ErrCampNotFound = errors.New("camp not found")
	// ErrPriceMismatch is returned when a client-supplied price differs from the camp fee.
	ErrPriceMismatch = errors.New("price does not match camp fee")
	// ErrInvalidAmount is returned when a charge amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidContact is returned when a contact number cannot be parsed.
	ErrInvalidContact = errors.New("invalid contact number")
	// ErrUnauthorized is returned when a request carries no valid credential.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden access")
	// ErrGatewayUnavailable is returned when no payment gateway is configured.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// Wire messages for guard rejections. Clients match on these exact strings.
const (
	MessageUnauthorized = "Unauthorized Access"
	MessageForbidden    = "Forbidden Access"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrCampNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCampNotFound.Error(), "CAMP_NOT_FOUND")
	case errors.Is(err, ErrPriceMismatch):
		return NewHTTPError(http.StatusBadRequest, ErrPriceMismatch.Error(), "PRICE_MISMATCH")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidAmount.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidContact):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidContact.Error(), "INVALID_CONTACT")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, MessageUnauthorized, "UNAUTHORIZED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, MessageForbidden, "FORBIDDEN")
	case errors.Is(err, ErrGatewayUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrGatewayUnavailable.Error(), "GATEWAY_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
