package routes

import (
	"fmt"
	"net/http"

	"team-planner-backend/internal/api/handlers"
	"team-planner-backend/internal/api/middleware"
	"team-planner-backend/internal/auth"
	"team-planner-backend/internal/config"
	"team-planner-backend/internal/realtime"
	"team-planner-backend/internal/repository"
	"team-planner-backend/internal/service"
	"team-planner-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Application is the wired HTTP router plus the background services that share its repositories
type Application struct {
	Router    *gin.Engine
	Reminders *service.ReminderService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub realtime.Hub) (*Application, error) {
	// Create router
	router := gin.New()
	router.ContextWithFallback = true
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	files, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewGroupMemberRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	priorityRepo := repository.NewPriorityRepository(db)
	eventRepo := repository.NewEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	reminderLogRepo := repository.NewReminderLogRepository(db)

	// Initialize services
	authz := service.NewAuthorizationService(groupRepo, memberRepo)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo, memberRepo, userRepo, attachmentRepo, authz, notificationService, files, validator)
	taskService := service.NewTaskService(taskRepo, groupRepo, memberRepo, priorityRepo, attachmentRepo, authz, notificationService, files, validator)
	attachmentService := service.NewAttachmentService(attachmentRepo, taskRepo, authz, files)
	eventService := service.NewEventService(eventRepo, groupRepo, authz, validator, cfg.DefaultTimeZone)
	calendarService := service.NewCalendarService(groupRepo, eventRepo, taskRepo, authz)
	dashboardService := service.NewDashboardService(groupRepo, taskRepo, eventRepo)
	reminderService := service.NewReminderService(taskRepo, eventRepo, groupRepo, memberRepo, reminderLogRepo, notificationService, cfg.ReminderWindow)

	// Initialize auth
	authService, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: cfg.JWTSecret, TokenTTL: cfg.JWTTTL})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, hub)
	userHandler := handlers.NewUserHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	taskHandler := handlers.NewTaskHandler(taskService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService, cfg.MaxUploadBytes())
	eventHandler := handlers.NewEventHandler(eventService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored attachment files
	router.Static(cfg.UploadBaseURL, cfg.UploadDir)

	// Development token issuance
	if !cfg.IsProduction() {
		authHandler := auth.NewAuthHandler(authService, userService)
		router.POST("/api/auth/token", authHandler.IssueToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	if cfg.RateLimitRPS > 0 {
		v1.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	{
		v1.GET("/users/me", userHandler.GetCurrentUser)

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.POST("/search", groupHandler.SearchGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.GET("/:id/members", groupHandler.ListMembers)
			groups.POST("/:id/members", groupHandler.InviteMember)
			groups.DELETE("/:id/members/:userId", groupHandler.RemoveMember)
			groups.PUT("/:id/members/:userId/role", groupHandler.ChangeRole)
			groups.POST("/:id/leave", groupHandler.LeaveGroup)
			groups.GET("/:id/tasks", taskHandler.ListGroupTasks)
			groups.GET("/:id/events", calendarHandler.GroupEvents)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListMyTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.GET("/:id/attachments", attachmentHandler.ListAttachments)
			tasks.POST("/:id/attachments", attachmentHandler.UploadAttachment)
		}

		v1.DELETE("/attachments/:id", attachmentHandler.DeleteAttachment)

		// Event routes
		events := v1.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
			events.PATCH("/:id/time", eventHandler.UpdateEventTime)
		}

		v1.GET("/calendar", calendarHandler.AllItems)

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.GET("/stream", notificationHandler.Stream)
		}

		v1.GET("/dashboard", dashboardHandler.GetStats)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return &Application{Router: router, Reminders: reminderService}, nil
}
