package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/maroofsyyed/dominion1/internal/api"
	"github.com/maroofsyyed/dominion1/internal/config"
	"github.com/maroofsyyed/dominion1/internal/logging"
	"github.com/maroofsyyed/dominion1/internal/realtime"
	"github.com/maroofsyyed/dominion1/internal/repository/mongo"
	"github.com/maroofsyyed/dominion1/internal/seed"
	"github.com/maroofsyyed/dominion1/internal/service"
	"github.com/maroofsyyed/dominion1/internal/storage"
)

// @title Dominion API
// @version 1.0
// @description Calisthenics training, mobility, progress tracking and community.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	logger := logging.New(cfg.Log)
	gin.SetMode(cfg.Server.Mode)
	logger.Info().Str("address", cfg.Server.Address).Str("mode", cfg.Server.Mode).Msg("starting Dominion server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		logger.Info().Msg("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	// The unique email index must exist before the first registration.
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = mongo.EnsureRequiredIndexes(indexCtx, appDB)
	indexCancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create required indexes")
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			logger.Error().Err(err).Msg("index creation failed")
			return
		}
		logger.Info().Msg("database indexes ensured")
	}()

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	mobilityRepo := mongo.NewMongoMobilityRepository(appDB)
	assessmentRepo := mongo.NewMongoAssessmentRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	communityRepo := mongo.NewMongoCommunityRepository(appDB)
	channelRepo := mongo.NewMongoChannelRepository(appDB)
	messageRepo := mongo.NewMongoMessageRepository(appDB)
	connectionRepo := mongo.NewMongoConnectionRepository(appDB)
	productRepo := mongo.NewMongoProductRepository(appDB)
	challengeRepo := mongo.NewMongoChallengeRepository(appDB)
	achievementRepo := mongo.NewMongoAchievementRepository(appDB)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := seed.Run(ctx, seed.Targets{
			Exercises:    exerciseRepo,
			Mobility:     mobilityRepo,
			Products:     productRepo,
			Achievements: achievementRepo,
			Challenges:   challengeRepo,
			Channels:     channelRepo,
			Communities:  communityRepo,
		}, time.Now().UTC(), logger)
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("seeding reference data failed")
		}
	}

	// --- File Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize S3 storage")
		}
	} else {
		logger.Info().Msg("S3 not configured, profile photos are stored inline")
	}

	// --- Services ---
	communityService := service.NewCommunityService(communityRepo, channelRepo, messageRepo)
	services := api.Services{
		Auth:         service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		Exercise:     service.NewExerciseService(exerciseRepo),
		Mobility:     service.NewMobilityService(mobilityRepo, assessmentRepo, userRepo, logger),
		Progress:     service.NewProgressService(progressRepo, workoutRepo, userRepo, logger),
		Community:    communityService,
		Social:       service.NewSocialService(userRepo, connectionRepo, progressRepo),
		User:         service.NewUserService(userRepo, fileStorage, logger),
		Gamification: service.NewGamificationService(userRepo, challengeRepo, achievementRepo),
		Shop:         service.NewShopService(productRepo),
		Hub:          realtime.NewHub(communityService, logger),
	}

	// --- Gin Engine ---
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(logger))
	api.SetupRoutes(router, cfg.Server.AllowedOrigins, services)

	server := &http.Server{
		Addr:        cfg.Server.Address,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// Websocket connections outlive any write timeout; the pumps set
		// their own deadlines.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server exiting")
}
