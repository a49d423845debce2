package main

import (
	"context"
	"katana_store/config"
	"katana_store/internal/cache"
	"katana_store/internal/delivery"
	"katana_store/internal/events"
	"katana_store/internal/repository"
	"katana_store/internal/usecase"
	"katana_store/pkg/db"
	"katana_store/pkg/metrics"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"log"
)

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)

	logger.Info("Starting Katana Store...")

	// --- Database Connection ---
	database, client, err := db.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	logger.Info("Database connection established.")

	catalogCache := cache.NewCatalogCache(cfg.RedisAddr, logger)
	if catalogCache != nil {
		logger.Infof("Catalog cache enabled (redis %s).", cfg.RedisAddr)
	}

	publisher := events.NewOrderPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	if publisher != nil {
		defer publisher.Close()
		logger.Infof("Order event publisher enabled (topic %s).", cfg.KafkaTopic)
	}

	// --- Dependency Injection ---
	// Repository Layer
	katanaRepo := repository.NewMongoKatanaRepository(database, logger)
	orderRepo := repository.NewMongoOrderRepository(database, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	catalogUseCase := usecase.NewCatalogUseCase(katanaRepo, catalogCache, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(katanaRepo, orderRepo, publisher, logger)
	logger.Info("Use cases initialized.")

	katanaHandler := delivery.NewKatanaHandler(catalogUseCase, logger)
	checkoutHandler := delivery.NewCheckoutHandler(checkoutUseCase, logger)
	diagnosticsHandler := delivery.NewDiagnosticsHandler(database, cfg, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()

	router.Use(gin.Recovery())

	// Any origin, any method, any header, credentials included.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	router.Use(func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Info("Request completed")
	})

	serverMetrics := metrics.NewServerMetrics("api")
	router.Use(serverMetrics.Middleware())

	//Route Registration

	router.GET("/metrics", metrics.Handler())

	diagnosticsHandler.RegisterRoutes(router)
	katanaHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	//  Start Server
	addr := ":" + cfg.Port
	logger.Infof("Starting server on port %s", addr)
	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
