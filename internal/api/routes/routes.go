package routes

import (
	"context"
	"net/http"

	"octofit-backend/internal/api/handlers"
	"octofit-backend/internal/api/middleware"
	"octofit-backend/internal/config"
	"octofit-backend/internal/logger"
	"octofit-backend/internal/observability"
	"octofit-backend/internal/repository"
	"octofit-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// APIBasePath prefixes every collection route
const APIBasePath = "/api"

// Dependencies carries what the router needs from main
type Dependencies struct {
	Store    *repository.Store
	Config   *config.Config
	Registry *prometheus.Registry
}

// SetupRoutes configures all the routes for the application.
// ctx bounds background work started for the router, such as the rate limiter sweep.
func SetupRoutes(ctx context.Context, deps Dependencies) *gin.Engine {
	cfg := deps.Config
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := observability.NewMetrics(registry)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(metrics))

	validator := service.NewValidator()
	store := deps.Store

	// Initialize services
	userService := service.NewUserService(store.Users, validator)
	teamService := service.NewTeamService(store.Teams, store.Users, validator)
	activityService := service.NewActivityService(store.Activities, store.Users, validator)
	leaderboardService := service.NewLeaderboardService(store, validator, metrics)
	workoutService := service.NewWorkoutService(store.Workouts, validator)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(APIBasePath)
	healthHandler := handlers.NewHealthHandler(store.Pinger, Version)
	userHandler := handlers.NewUserHandler(userService, activityService)
	teamHandler := handlers.NewTeamHandler(teamService)
	activityHandler := handlers.NewActivityHandler(activityService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)

	// Operational routes stay outside the rate limit
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", rootHandler.Index)

	api := router.Group(APIBasePath)
	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx)
		api.Use(limiter.Handler())
	}

	{
		api.GET("/", rootHandler.Index)

		users := api.Group("/users")
		{
			users.GET("/", userHandler.ListUsers)
			users.POST("/", userHandler.CreateUser)
			users.GET("/:id/", userHandler.GetUser)
			users.PUT("/:id/", userHandler.ReplaceUser)
			users.PATCH("/:id/", userHandler.UpdateUser)
			users.DELETE("/:id/", userHandler.DeleteUser)
			users.GET("/:id/activities/", userHandler.GetUserActivities)
		}

		teams := api.Group("/teams")
		{
			teams.GET("/", teamHandler.ListTeams)
			teams.POST("/", teamHandler.CreateTeam)
			teams.GET("/:id/", teamHandler.GetTeam)
			teams.PUT("/:id/", teamHandler.ReplaceTeam)
			teams.PATCH("/:id/", teamHandler.UpdateTeam)
			teams.DELETE("/:id/", teamHandler.DeleteTeam)
			teams.GET("/:id/members/", teamHandler.GetTeamMembers)
		}

		activities := api.Group("/activities")
		{
			activities.GET("/", activityHandler.ListActivities)
			activities.POST("/", activityHandler.CreateActivity)
			activities.GET("/:id/", activityHandler.GetActivity)
			activities.PUT("/:id/", activityHandler.ReplaceActivity)
			activities.PATCH("/:id/", activityHandler.UpdateActivity)
			activities.DELETE("/:id/", activityHandler.DeleteActivity)
		}

		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("/", leaderboardHandler.ListLeaderboard)
			leaderboard.POST("/", leaderboardHandler.CreateEntry)
			leaderboard.GET("/top_users/", leaderboardHandler.TopUsers)
			leaderboard.POST("/recompute/", leaderboardHandler.Recompute)
			leaderboard.GET("/:id/", leaderboardHandler.GetEntry)
			leaderboard.PUT("/:id/", leaderboardHandler.ReplaceEntry)
			leaderboard.PATCH("/:id/", leaderboardHandler.UpdateEntry)
			leaderboard.DELETE("/:id/", leaderboardHandler.DeleteEntry)
		}

		workouts := api.Group("/workouts")
		{
			workouts.GET("/", workoutHandler.ListWorkouts)
			workouts.POST("/", workoutHandler.CreateWorkout)
			workouts.GET("/by_difficulty/", workoutHandler.ByDifficulty)
			workouts.GET("/:id/", workoutHandler.GetWorkout)
			workouts.PUT("/:id/", workoutHandler.ReplaceWorkout)
			workouts.PATCH("/:id/", workoutHandler.UpdateWorkout)
			workouts.DELETE("/:id/", workoutHandler.DeleteWorkout)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router
}
