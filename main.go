package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contractflow/backend/config"
	"github.com/contractflow/backend/handler"
	"github.com/contractflow/backend/middleware"
	"github.com/contractflow/backend/pkg/logger"
	"github.com/contractflow/backend/service"
	"github.com/contractflow/backend/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	docSvc, err := service.NewDocumentService(&cfg.Minio)
	if err != nil {
		slog.Error("failed to initialize document service", "error", err)
		os.Exit(1)
	}

	if err := docSvc.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure document bucket", "error", err)
		os.Exit(1)
	}

	// Initialize the store and load the demo dataset before serving
	store := storage.NewMemStorage()
	store.Seed()

	analyzer := service.NewAnalyzer(store, &cfg.Analysis)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg, store)
	dashboardHandler := handler.NewDashboardHandler(store)
	contractHandler := handler.NewContractHandler(store, analyzer, docSvc)
	vendorHandler := handler.NewVendorHandler(store)
	notificationHandler := handler.NewNotificationHandler(store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(corsMiddleware())                       // CORS
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/vendors", vendorHandler.Register)
		api.GET("/notifications", notificationHandler.List)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.GET("/dashboard/stats", dashboardHandler.Stats)

		protected.GET("/contracts", contractHandler.List)
		protected.POST("/contracts", contractHandler.Create)
		protected.GET("/contracts/:id", contractHandler.Get)
		protected.PATCH("/contracts/:id", contractHandler.Update)
		protected.DELETE("/contracts/:id", contractHandler.Delete)
		protected.POST("/contracts/:id/documents", contractHandler.UploadDocument)
		protected.GET("/contracts/:id/ai-analysis", contractHandler.GetAnalyses)
		protected.POST("/contracts/:id/ai-analysis", contractHandler.CreateAnalysis)

		protected.GET("/vendors", vendorHandler.List)
		protected.PATCH("/vendors/:id", vendorHandler.Update)
		protected.GET("/vendors/:id/contracts", vendorHandler.Contracts)

		protected.POST("/notifications", notificationHandler.Create)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
