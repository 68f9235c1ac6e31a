package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lunch_manager/internal/config"
	"lunch_manager/internal/database"
	"lunch_manager/internal/handlers"
	"lunch_manager/internal/middleware"
	"lunch_manager/internal/migrations"
	"lunch_manager/internal/redis"
	"lunch_manager/internal/repository"
	"lunch_manager/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	// Initialize Redis
	cache, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}
	defer cache.Close()

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	profileService := services.NewProfileService(profileRepo)
	menuService := services.NewMenuService(menuRepo, cache, cacheTTL, cfg.Location)
	orderService := services.NewOrderService(orderRepo, menuRepo, cache, cfg.Location)
	reportService := services.NewReportService(orderRepo, menuRepo, cache, cacheTTL, cfg.Location)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	menuHandler := handlers.NewMenuHandler(menuService)
	orderHandler := handlers.NewOrderHandler(orderService)
	profileHandler := handlers.NewProfileHandler(profileService)
	adminHandler := handlers.NewAdminHandler(menuService, reportService, profileService)

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"alive": true})
	})

	router.POST("/api/auth/signup", authHandler.Signup)
	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		api.GET("/menu", menuHandler.GetMenu)
		api.GET("/menu/:id", menuHandler.GetMenuItem)

		api.GET("/orders", orderHandler.GetOrders)
		api.POST("/orders", orderHandler.PlaceOrder)
		api.PUT("/orders/:id", orderHandler.UpdateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(profileRepo))
	{
		admin.GET("/menu", adminHandler.ListMenuItems)
		admin.POST("/menu", adminHandler.CreateMenuItem)
		admin.PUT("/menu/:id", adminHandler.UpdateMenuItem)
		admin.DELETE("/menu/:id", adminHandler.DeleteMenuItem)

		admin.GET("/orders", adminHandler.ListAllOrders)
		admin.GET("/orders/by-shift", adminHandler.OrdersByShift)
		admin.GET("/serve-dates", adminHandler.ListServeDates)

		admin.GET("/profiles", adminHandler.ListProfiles)
		admin.PUT("/profiles/:id", adminHandler.UpdateUserProfile)
	}

	// Start server
	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
