package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "gotofork-core/docs"
	"gotofork-core/internal/app"
	"gotofork-core/internal/config"
	"gotofork-core/internal/logger"
	"gotofork-core/internal/metrics"
	"gotofork-core/internal/middleware"
	"gotofork-core/internal/presentation/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Go to Fork API
// @version 1.0
// @description Upstream and fork shortcuts for GitHub repository pages

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey SettingsAuth
// @in header
// @name Authorization
// @description HS256 settings token

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		logger.L().Fatal("failed to load configuration", logger.Err(err))
	}

	logger.Init(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level})
	defer func() { _ = logger.Sync() }()
	log := logger.Named("server")

	m := metrics.New(prometheus.DefaultRegisterer)

	// Credential store
	store, db, err := app.OpenCredentialStore(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to open credential store", logger.Err(err))
	}
	if db != nil {
		defer db.Close()
	}

	a := app.New(cfg, store, m)

	// HTTP handlers
	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	healthHandler := handlers.NewHealthHandler(cfg.Credential.Source, pinger)
	augmentHandler := handlers.NewAugmentHandler(a.Pipeline, a.Renderer)
	settingsHandler := handlers.NewSettingsHandler(a.Credentials)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"X-Run-ID"},
		MaxAge:          12 * time.Hour,
	}))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)
		v1.POST("/augment", augmentHandler.Augment)
		v1.POST("/render", augmentHandler.Render)

		if cfg.Credential.JWTSecret != "" {
			authMiddleware, err := middleware.NewAuthMiddleware(cfg.Credential.JWTSecret)
			if err != nil {
				log.Fatal("failed to initialize auth middleware", logger.Err(err))
			}

			settings := v1.Group("/settings")
			settings.Use(authMiddleware.RequireSettingsScope())
			{
				settings.PUT("/token", settingsHandler.PutToken)
				settings.DELETE("/token", settingsHandler.DeleteToken)
			}
		} else {
			log.Info("SETTINGS_JWT_SECRET not set, settings routes disabled")
		}
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler(prometheus.DefaultGatherer)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.GetServerAddress()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", logger.Err(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", logger.Err(err))
	}

	log.Info("server exited")
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			logger.Status(c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
