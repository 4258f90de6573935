package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"campmed/internal/auth"
	"campmed/internal/config"
	"campmed/internal/handler"
	"campmed/internal/logger"
	"campmed/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Camp        *handler.CampHandler
	Participant *handler.ParticipantHandler
	Feedback    *handler.FeedbackHandler
	Payment     *handler.PaymentHandler
	Health      *handler.HealthHandler
}

// Guards holds the request gates shared by routes.
type Guards struct {
	Verifier   *auth.Verifier
	Authorizer *auth.Authorizer
	RateLimit  *middleware.RateLimiter
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, log *logger.Logger, g Guards, h Handlers) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Tracing())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit("1M"))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	authed := g.Verifier.Authenticate
	admin := func(next auth.HandlerFunc) echo.HandlerFunc {
		return g.Verifier.Authenticate(g.Authorizer.RequireAdmin(next))
	}
	limited := g.RateLimit.Middleware()

	e.GET("/", h.Health.Root)
	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Tokens
	e.POST("/jwt", h.Auth.IssueToken, limited)
	e.POST("/logout", authed(h.Auth.Logout))

	// Users
	e.GET("/users", authed(h.User.GetUser))
	e.GET("/users/admin/:email", authed(h.User.CheckAdmin))
	e.POST("/users", h.User.CreateUser)
	e.PUT("/user/:id", authed(h.User.UpdateProfile))

	// Camps
	e.GET("/camps", h.Camp.ListCamps)
	e.GET("/camp/:id", h.Camp.GetCamp)
	e.GET("/camp", admin(h.Camp.ListByOrganizer))
	e.POST("/camps", admin(h.Camp.CreateCamp))
	e.PATCH("/camp/:id", admin(h.Camp.UpdateCamp))
	e.DELETE("/delete-camp/:id", admin(h.Camp.DeleteCamp))
	e.PUT("/participant/:id", h.Camp.IncrementParticipants)

	// Participants
	e.GET("/participant-camp", admin(h.Participant.ListParticipants))
	e.GET("/participant", authed(h.Participant.ListByEmail))
	e.GET("/participants/:id", h.Participant.GetParticipant)
	e.POST("/participant", h.Participant.Register)
	e.PATCH("/participant/:email", authed(h.Participant.RenameByEmail))
	e.PATCH("/participants/:id", authed(h.Participant.MarkPaid))
	e.PATCH("/update-participant/:confirmId", admin(h.Participant.Confirm))
	e.DELETE("/participant-camp/:id", authed(h.Participant.Cancel))

	// Feedback
	e.GET("/feedback", h.Feedback.ListFeedback)
	e.POST("/feedback", authed(h.Feedback.CreateFeedback))

	// Payments
	e.POST("/create-payment-intent", h.Payment.CreatePaymentIntent, limited)
	e.POST("/payment", authed(h.Payment.RecordPayment))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
