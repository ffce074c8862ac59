package main

import (
	"fmt"
	"net/http"
	"os"

	"assetfolio/internal/config"
	"assetfolio/internal/database"
	"assetfolio/internal/handlers"
	"assetfolio/internal/logger"
	"assetfolio/internal/middleware"
	"assetfolio/internal/quote"
	"assetfolio/internal/registry"
	"assetfolio/internal/services"
	"assetfolio/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "assetfolio/internal/docs" // Import swagger docs
)

// @title           Assetfolio API
// @version         1.0
// @description     Assetfolio aggregates a multi-asset investment portfolio, enriches holdings with live market prices, and computes portfolio-level gain/loss analytics.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	reg := registry.New(dbManager.DB())
	quoteClient := quote.NewClient(
		&http.Client{Timeout: appConfig.QuoteTimeout},
		appConfig.QuoteAPIURL,
		appConfig.QuoteAPIKey,
	)
	priceService := quote.NewService(quoteClient, appConfig.QuoteCacheTTL)
	assetService := services.NewAssetService(reg, priceService, appConfig.TopMovers)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService)
	priceHandler := handlers.NewPriceHandler(priceService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Asset routes
	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/search", assetHandler.SearchAssets)
	assets.GET("/type/:type", assetHandler.GetAssetsByType)
	assets.GET("/:id", assetHandler.GetAssetByID)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	// Portfolio routes
	portfolio := v1.Group("/portfolio")
	portfolio.GET("/summary", assetHandler.GetPortfolioSummary)

	// Price routes
	prices := v1.Group("/prices")
	prices.GET("/:symbol", priceHandler.GetPrice)

	log.Infof("Starting Assetfolio backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
