package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Gull-Stack/love-rescue-sub003/internal/db"
	"github.com/Gull-Stack/love-rescue-sub003/internal/handlers"
	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/middleware"
	"github.com/Gull-Stack/love-rescue-sub003/internal/observability"
	"github.com/Gull-Stack/love-rescue-sub003/internal/repos"
	"github.com/Gull-Stack/love-rescue-sub003/internal/server"
	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
	"github.com/Gull-Stack/love-rescue-sub003/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	environment := utils.GetEnv("APP_ENV", "development", log)

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "love-rescue",
		Environment: environment,
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	relationshipRepo := repos.NewRelationshipRepo(thePG, log)
	assessmentRepo := repos.NewAssessmentRepo(thePG, log)
	strategyRepo := repos.NewStrategyRepo(thePG, log)
	matchupRepo := repos.NewMatchupRepo(thePG, log)
	treatmentPlanRepo := repos.NewTreatmentPlanRepo(thePG, log)
	activityEventRepo := repos.NewActivityEventRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	cacheService, err := services.NewCacheService(log)
	if err != nil {
		log.Warn("Could not init CacheService, continuing without cache", "error", err)
		cacheService = nil
	}
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	relationshipService := services.NewRelationshipService(thePG, log, relationshipRepo)
	assessmentService := services.NewAssessmentService(thePG, log, assessmentRepo)
	strategyService := services.NewStrategyService(thePG, log, relationshipRepo, strategyRepo, assessmentService, cacheService)
	matchupService := services.NewMatchupService(thePG, log, relationshipRepo, matchupRepo, assessmentService)
	treatmentService := services.NewTreatmentService(thePG, log, treatmentPlanRepo, activityEventRepo, assessmentService)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipService)
	strategyHandler := handlers.NewStrategyHandler(strategyService, relationshipService)
	matchupHandler := handlers.NewMatchupHandler(matchupService, relationshipService)
	treatmentHandler := handlers.NewTreatmentHandler(treatmentService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:         authHandler,
		AuthMiddleware:      authMiddleware,
		UserHandler:         userHandler,
		AssessmentHandler:   assessmentHandler,
		RelationshipHandler: relationshipHandler,
		StrategyHandler:     strategyHandler,
		MatchupHandler:      matchupHandler,
		TreatmentHandler:    treatmentHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
