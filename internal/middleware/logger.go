// Package middleware holds the echo middleware shared by every route.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"campmed/internal/logger"
)

// RequestLogger emits one http_request line per request with the request id
// set by echo's RequestID middleware.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.HTTPRequest(v.Method, v.URIPath, v.Status, v.Latency.Round(time.Microsecond), v.RemoteIP, v.RequestID)
			return nil
		},
	})
}
