package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gull-Stack/love-rescue-sub003/internal/handlers"
	"github.com/Gull-Stack/love-rescue-sub003/internal/middleware"
)

type RouterConfig struct {
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	UserHandler         *handlers.UserHandler
	AssessmentHandler   *handlers.AssessmentHandler
	RelationshipHandler *handlers.RelationshipHandler
	StrategyHandler     *handlers.StrategyHandler
	MatchupHandler      *handlers.MatchupHandler
	TreatmentHandler    *handlers.TreatmentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("love-rescue"))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	// Assessments
	protected.POST("/assessments", cfg.AssessmentHandler.Submit)
	protected.GET("/assessments", cfg.AssessmentHandler.ListLatest)
	protected.GET("/profile", cfg.AssessmentHandler.GetProfile)
	// Relationship
	protected.POST("/relationship/invite", cfg.RelationshipHandler.CreateInvite)
	protected.POST("/relationship/join", cfg.RelationshipHandler.Join)
	protected.GET("/relationship", cfg.RelationshipHandler.Get)
	// Strategies
	protected.POST("/strategies/generate", cfg.StrategyHandler.Generate)
	protected.GET("/strategies/active", cfg.StrategyHandler.GetActive)
	protected.PATCH("/strategies/:id/progress", cfg.StrategyHandler.UpdateProgress)
	protected.GET("/strategies/history", cfg.StrategyHandler.History)
	// Matchup
	protected.POST("/matchup/generate", cfg.MatchupHandler.Generate)
	protected.GET("/matchup", cfg.MatchupHandler.GetLatest)
	// Treatment plans
	protected.GET("/treatment/options", cfg.TreatmentHandler.Options)
	protected.POST("/treatment/plans", cfg.TreatmentHandler.CreatePlan)
	protected.GET("/treatment/plans", cfg.TreatmentHandler.ListPlans)
	protected.GET("/treatment/plans/:id", cfg.TreatmentHandler.GetPlan)
	protected.POST("/treatment/plans/:id/events", cfg.TreatmentHandler.RecordEvent)
	protected.GET("/treatment/plans/:id/progress", cfg.TreatmentHandler.Progress)

	return router
}
