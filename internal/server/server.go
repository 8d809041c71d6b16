package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"mathew.com/nurserydirectory/internal/config"
	"mathew.com/nurserydirectory/internal/handler"
	"mathew.com/nurserydirectory/internal/middleware"
	"mathew.com/nurserydirectory/internal/model"
	"mathew.com/nurserydirectory/internal/repository"
	"mathew.com/nurserydirectory/internal/service"
	"mathew.com/nurserydirectory/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	nurseryRepo := repository.NewNurseryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		// The API works without image storage; uploads just 503.
		log.Printf("image storage disabled: %v", err)
		imageStorage = nil
	}

	notificationSvc := service.NewNotificationService(notificationRepo, redisClient)

	authSvc := service.NewAuthService(userRepo)
	groupSvc := service.NewGroupService(groupRepo)
	nurserySvc := service.NewNurseryService(nurseryRepo, groupRepo, reviewRepo, notificationSvc, cfg.PreviewUnapproved)
	reviewSvc := service.NewReviewService(reviewRepo, nurseryRepo, notificationSvc, redisClient, cfg.ReviewRateLimit)
	searchSvc := service.NewSearchService(groupRepo, nurseryRepo, reviewRepo, cfg.AutocompleteLimit)
	adminSvc := service.NewAdminService(userRepo, groupRepo, nurseryRepo, reviewRepo, notificationSvc)
	presenceSvc := service.NewPresenceService(userRepo, redisClient, cfg.PresenceTTL)

	authHandler := handler.NewAuthHandler(authSvc)
	groupHandler := handler.NewGroupHandler(groupSvc)
	nurseryHandler := handler.NewNurseryHandler(nurserySvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	searchHandler := handler.NewSearchHandler(searchSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, redisClient)
	uploadHandler := handler.NewUploadHandler(imageStorage)
	presenceHandler := handler.NewPresenceHandler(presenceSvc)

	if redisClient != nil {
		go presenceSvc.Run(context.Background(), cfg.PresenceSweep)
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
	}

	api.GET("/groups", groupHandler.ListPublic)
	api.GET("/groups/:slug", groupHandler.GetBySlug)
	api.GET("/nurseries", nurseryHandler.ListPublic)
	api.GET("/nurseries/:slug", nurseryHandler.GetBySlug)
	api.POST("/reviews", authMiddleware.OptionalAuth(), reviewHandler.Submit)
	api.GET("/search/autocomplete", searchHandler.Autocomplete)
	api.GET("/search/city", searchHandler.SearchByCity)

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/me", authHandler.Me)

		// Owner dashboard
		dashboard := protected.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireRoles(model.RoleNurseryOwner, model.RoleAdmin))
		{
			dashboard.GET("/group", groupHandler.MyGroup)
			dashboard.PUT("/group", groupHandler.SaveMyGroup)
			dashboard.GET("/nurseries", nurseryHandler.MyNurseries)
			dashboard.POST("/nurseries", nurseryHandler.Create)
			dashboard.PUT("/nurseries/:id", nurseryHandler.Update)
			dashboard.DELETE("/nurseries/:id", nurseryHandler.Delete)
			dashboard.GET("/nurseries/:id/reviews", reviewHandler.MyNurseryReviews)
			dashboard.GET("/preview/:slug", nurseryHandler.Preview)
			dashboard.POST("/uploads", uploadHandler.Upload)
			dashboard.DELETE("/uploads", uploadHandler.Delete)
			dashboard.POST("/presence", presenceHandler.Heartbeat)
		}

		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.GET("/users/owners", adminHandler.ListOwners)
			adminGroup.GET("/users/pending", adminHandler.ListPendingUsers)
			adminGroup.PUT("/users/:id/approve", adminHandler.ApproveUser)
			adminGroup.DELETE("/users/:id/reject", adminHandler.RejectUser)

			adminGroup.GET("/groups", adminHandler.ListGroups)
			adminGroup.PUT("/groups/:id", adminHandler.UpdateGroup)
			adminGroup.PUT("/groups/:id/toggle", adminHandler.ToggleGroupActive)
			adminGroup.DELETE("/groups/:id", adminHandler.DeleteGroup)

			adminGroup.GET("/nurseries", adminHandler.ListNurseries)
			adminGroup.PUT("/nurseries/:id/toggle", adminHandler.ToggleNurseryApproved)
			adminGroup.DELETE("/nurseries/:id", adminHandler.DeleteNursery)

			adminGroup.GET("/reviews", adminHandler.ListReviews)
			adminGroup.PUT("/reviews/:id/approve", adminHandler.ApproveReview)
			adminGroup.PUT("/reviews/:id/reject", adminHandler.RejectReview)

			adminGroup.GET("/stats", adminHandler.DashboardStats)
			adminGroup.GET("/stats/users/monthly", adminHandler.MonthlyUserStats)
			adminGroup.GET("/stats/reviews/monthly", adminHandler.MonthlyReviewStats)

			adminGroup.GET("/notifications", notificationHandler.List)
			adminGroup.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			adminGroup.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
			adminGroup.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
			adminGroup.GET("/notifications/ws", notificationHandler.Stream)
		}
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
