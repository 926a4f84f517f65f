package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"connekt/internal/adapter/api"
	"connekt/internal/adapter/api/handler"
	apimiddleware "connekt/internal/adapter/api/middleware"
	"connekt/internal/adapter/api/router"
	"connekt/internal/adapter/repository"
	"connekt/internal/infrastructure/firebase"
	"connekt/internal/infrastructure/ratelimit"
	"connekt/internal/infrastructure/storage"
	"connekt/internal/usecase"
	"connekt/pkg/config"
	"connekt/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer clients.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, clients.ClientOptions()...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	profileRepo := repository.NewFirestoreProfileRepository(clients.Firestore)
	accountRepo := repository.NewFirestoreAccountRepository(clients.Firestore)
	handleRepo := repository.NewFirestoreHandleRepository(clients.Firestore)
	ratingRepo := repository.NewFirestoreRatingRepository(clients.Firestore)
	projectRepo := repository.NewFirestoreProjectRepository(clients.Firestore)
	taskRepo := repository.NewFirestoreTaskRepository(clients.Firestore)
	contractRepo := repository.NewFirestoreContractRepository(clients.Firestore)
	workspaceRepo := repository.NewFirestoreWorkspaceRepository(clients.Firestore)
	invitationRepo := repository.NewFirestoreInvitationRepository(clients.Firestore)
	agencyRepo := repository.NewFirestoreAgencyRepository(clients.Firestore)
	recruiterRepo := repository.NewFirestoreRecruiterRepository(clients.Firestore)

	appLogger := logger.L()

	profileUseCase := usecase.NewProfileUseCase(profileRepo, accountRepo, handleRepo, ratingRepo, appLogger.With("usecase", "profile"))
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, profileRepo, profileUseCase, appLogger.With("usecase", "rating"))
	proAnalyticsUseCase := usecase.NewProAnalyticsUseCase(projectRepo, taskRepo, profileRepo, profileUseCase, appLogger.With("usecase", "pro_analytics"))
	proPlusAnalyticsUseCase := usecase.NewProPlusAnalyticsUseCase(
		workspaceRepo,
		contractRepo,
		recruiterRepo,
		profileUseCase,
		cfg.CommissionRate,
		cfg.TalentPoolFanoutLimit,
		appLogger.With("usecase", "pro_plus_analytics"),
	)
	reputationUseCase := usecase.NewReputationUseCase(profileUseCase, appLogger.With("usecase", "reputation"))
	layoutUseCase := usecase.NewLayoutUseCase(profileUseCase, usecase.NewLayoutRenderer())
	mediaUseCase := usecase.NewMediaUseCase(storageClient, profileUseCase, cfg.MaxUploadBytes, appLogger.With("usecase", "media"))
	workspaceUseCase := usecase.NewWorkspaceUseCase(workspaceRepo, invitationRepo, projectRepo, appLogger.With("usecase", "workspace"))
	agencyUseCase := usecase.NewAgencyUseCase(agencyRepo, recruiterRepo, appLogger.With("usecase", "agency"))

	handler.Setup(
		profileUseCase,
		ratingUseCase,
		proAnalyticsUseCase,
		proPlusAnalyticsUseCase,
		reputationUseCase,
		layoutUseCase,
		mediaUseCase,
		workspaceUseCase,
		agencyUseCase,
	)

	limiter := ratelimit.NewRateLimiter(map[string]ratelimit.Policy{
		ratelimit.ActionRateProfile: ratelimit.PerMinute(cfg.RatingRateLimit),
		ratelimit.ActionUploadMedia: ratelimit.PerMinute(20),
		ratelimit.ActionInvite:      ratelimit.PerMinute(30),
	}, ratelimit.PerMinute(60))
	limiter.StartCleanupRoutine(ctx, 30*time.Minute)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLogger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(bodyLimit(cfg.MaxUploadBytes)))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebase.NewFirebaseAuthClient(clients.Auth))
	subscriptionMiddleware := apimiddleware.NewSubscriptionMiddleware(profileUseCase)

	router.Setup(e, authMiddleware, subscriptionMiddleware, limiter)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly: %v", err)
	}
}

// bodyLimit leaves room for multipart framing around the largest upload.
func bodyLimit(maxUpload int64) string {
	return strconv.FormatInt(maxUpload/1024+64, 10) + "K"
}
