package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campmed/internal/errors"
	"campmed/internal/logger"
)

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Message: "invalid request body",
		Code:    "INVALID_REQUEST",
	})
}

func validationFailed(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Message: err.Error(),
		Code:    "VALIDATION_ERROR",
	})
}

func forbidden() error {
	return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
		Message: errors.MessageForbidden,
	})
}

// failed maps a service error to its HTTP form. Server-side failures are
// logged with the operation name; client errors are not.
func failed(log *logger.Logger, operation string, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.DatabaseError(operation, err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(req); err != nil {
		return validationFailed(err)
	}
	return nil
}
