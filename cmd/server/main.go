package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/Rampandiyar/Volunteer/internal/config"
	"github.com/Rampandiyar/Volunteer/internal/constants"
	"github.com/Rampandiyar/Volunteer/internal/database"
	"github.com/Rampandiyar/Volunteer/internal/handlers"
	"github.com/Rampandiyar/Volunteer/internal/middleware"
	"github.com/Rampandiyar/Volunteer/internal/repository"
	"github.com/Rampandiyar/Volunteer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services and handlers
	userService := services.NewUserService(userRepo, assignmentRepo)
	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Volunteer API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(cfg.JWTSecret), authHandler.GetCurrentUser)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			users.GET("/all", userHandler.ListAll)
			users.GET("/:id", userHandler.GetByID)
			users.PUT("/:id", userHandler.Update)
			users.GET("/:id/stats", userHandler.Stats)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			tasks.POST("", taskHandler.Create)
			tasks.GET("", taskHandler.List)
			// GET /tasks/:id keys on the user id, not the task id: the
			// volunteer screens list tasks through the assignment join.
			tasks.GET("/:id", taskHandler.UserAssignments)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
		}

		// Assignment routes (protected)
		assignments := api.Group("/assignments")
		assignments.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			assignments.POST("", assignmentHandler.Create)
			assignments.GET("", assignmentHandler.List)
			assignments.PUT("/:id", assignmentHandler.Update)
			assignments.DELETE("/:id", assignmentHandler.Delete)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			notifications.POST("", notificationHandler.Send)
			// GET /notifications/:id keys on the user id; PUT .../:id/read
			// keys on the notification id. Gin needs one wildcard name per
			// position, so both routes share :id.
			notifications.GET("/:id", notificationHandler.ListByUser)
			notifications.PUT("/read-multiple", notificationHandler.MarkManyRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
		}

		// Feedback routes (protected)
		feedback := api.Group("/feedback")
		feedback.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			feedback.POST("", feedbackHandler.Create)
			feedback.GET("/assignment/:id", feedbackHandler.ListByAssignment)
		}

		// Event routes (protected)
		events := api.Group("/events")
		events.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			events.GET("", eventHandler.List)
			events.POST("", eventHandler.Create)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
