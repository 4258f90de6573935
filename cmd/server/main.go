package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"campmed/docs"
	"campmed/internal/auth"
	"campmed/internal/cache"
	"campmed/internal/config"
	"campmed/internal/db"
	"campmed/internal/gateway"
	"campmed/internal/handler"
	"campmed/internal/logger"
	"campmed/internal/middleware"
	"campmed/internal/repository"
	"campmed/internal/router"
	"campmed/internal/service"
	"campmed/internal/telemetry"
)

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title CampMed API
// @version 1.0
// @description Medical camp registration API: camps, participants, feedback and payments with JWT authentication.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		logger.New(os.Getenv("APP_ENV")).Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.Address())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTELEndpoint, telemetry.ServiceName)
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	mongo, err := db.NewMongo(connectCtx, cfg.MongoConnectionURI(), cfg.MongoDatabase)
	if err != nil {
		return err
	}
	if err := mongo.EnsureIndexes(connectCtx); err != nil {
		// Existing duplicate emails block the unique index; serve anyway.
		log.DatabaseError("ensureIndexes", err)
	}
	log.Info("mongo connected", "database", cfg.MongoDatabase)

	redisClient := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cacheClient := cache.New(redisClient)
	if err := cacheClient.Ping(connectCtx); err != nil {
		log.Warn("redis unavailable, caching and rate limiting degraded", "error", err)
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set, payment intents disabled")
	}
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	colls := mongo.Collections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(colls.Users)
	campRepo := repository.NewCampRepository(colls.Camps)
	participantRepo := repository.NewParticipantRepository(colls.Participants)
	feedbackRepo := repository.NewFeedbackRepository(colls.Feedback)
	paymentRepo := repository.NewPaymentRepository(colls.Payments)

	// Initialize auth components
	jwtService, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		return err
	}
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cfg.PhoneRegion)
	campService := service.NewCampService(campRepo, cacheClient, cfg.CampCacheTTL)
	participantService := service.NewParticipantService(participantRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)
	paymentService := service.NewPaymentService(campRepo, paymentRepo, gateway.NewStripeGateway(cfg.StripeSecretKey))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(e, cfg, log,
		router.Guards{
			Verifier:   auth.NewVerifier(jwtService, tokenStore, log),
			Authorizer: auth.NewAuthorizer(userRepo, log),
			RateLimit:  middleware.NewRateLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow, log),
		},
		router.Handlers{
			Auth:        handler.NewAuthHandler(authService, log),
			User:        handler.NewUserHandler(userService, log),
			Camp:        handler.NewCampHandler(campService, log),
			Participant: handler.NewParticipantHandler(participantService, log),
			Feedback:    handler.NewFeedbackHandler(feedbackService, log),
			Payment:     handler.NewPaymentHandler(paymentService, log),
			Health: handler.NewHealthHandler(map[string]handler.Pinger{
				"mongo": mongo,
				"redis": cacheClient,
			}),
		},
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", "addr", cfg.Address(), "swagger", "/swagger/index.html")
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			e.Shutdown(shutdownCtx),
			mongo.Close(shutdownCtx),
			redisClient.Close(),
			shutdownTracing(shutdownCtx),
		)
	})

	return g.Wait()
}
