package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	costingapp "github.com/gestionale/backend/internal/application/costing"
	identityapp "github.com/gestionale/backend/internal/application/identity"
	jobapp "github.com/gestionale/backend/internal/application/job"
	partnerapp "github.com/gestionale/backend/internal/application/partner"
	quoteapp "github.com/gestionale/backend/internal/application/quote"
	"github.com/gestionale/backend/internal/infrastructure/auth"
	"github.com/gestionale/backend/internal/infrastructure/cache"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/gestionale/backend/internal/infrastructure/logger"
	"github.com/gestionale/backend/internal/infrastructure/persistence"
	"github.com/gestionale/backend/internal/interfaces/http/handler"
	"github.com/gestionale/backend/internal/interfaces/http/middleware"
	"github.com/gestionale/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting gestionale backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	jobRepo := persistence.NewGormJobRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	materialRepo := persistence.NewGormMaterialPurchaseRepository(db.DB)
	laborRepo := persistence.NewGormLaborCostRepository(db.DB)
	utilityRepo := persistence.NewGormUtilityCostRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Quote lookup cache, Redis with in-memory fallback
	cacheFactory := cache.NewQuoteCacheFactory(cfg.Redis, cache.WithLogger(log))
	quoteCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create quote cache", zap.Error(err))
	}

	// Initialize application services
	jobService := jobapp.NewJobService(jobRepo, quoteRepo, clientRepo)
	quoteService := quoteapp.NewQuoteService(quoteRepo, clientRepo, quoteCache)
	clientService := partnerapp.NewClientService(clientRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	costingService := costingapp.NewCostingService(materialRepo, laborRepo, utilityRepo)
	userService := identityapp.NewUserService(userRepo)

	// Token verification service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	jobHandler := handler.NewJobHandler(jobService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	costingHandler := handler.NewCostingHandler(costingService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later stage can log it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthWithConfig(jwtConfig))

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(jobHandler).
		Register(quoteHandler).
		Register(clientHandler).
		Register(supplierHandler).
		Register(costingHandler).
		Register(userHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
