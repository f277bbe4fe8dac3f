package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dietapp "github.com/dailydiet/backend/internal/application/diet"
	identityapp "github.com/dailydiet/backend/internal/application/identity"
	"github.com/dailydiet/backend/internal/infrastructure/config"
	"github.com/dailydiet/backend/internal/infrastructure/logger"
	"github.com/dailydiet/backend/internal/infrastructure/persistence"
	"github.com/dailydiet/backend/internal/interfaces/http/handler"
	"github.com/dailydiet/backend/internal/interfaces/http/middleware"
	"github.com/dailydiet/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting daily diet backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	mealRepo := persistence.NewGormMealRepository(db.DB)

	// Application services
	userService := identityapp.NewUserService(userRepo)
	mealService := dietapp.NewMealService(mealRepo)

	// HTTP handlers
	userHandler := handler.NewUserHandler(userService, cfg.Session)
	mealHandler := handler.NewMealHandler(mealService)
	systemHandler := handler.NewSystemHandler(db)

	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("failed to register validations", zap.Error(err))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/healthz", systemHandler.Health)

	// Public user endpoints
	users := router.NewDomainGroup("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)

	// Meal endpoints, all behind session resolution. The summary route is
	// registered before the id parameter so "sumary" never parses as an id.
	meals := router.NewDomainGroup("/meals")
	meals.Use(middleware.SessionAuth(userRepo))
	meals.POST("", mealHandler.Create)
	meals.GET("", mealHandler.List)
	meals.GET("/sumary", mealHandler.Summary)
	meals.GET("/:id", mealHandler.GetByID)
	meals.PUT("/:id", mealHandler.Update)
	meals.DELETE("/:id", mealHandler.Delete)

	router.NewRouter(engine).
		Register(users).
		Register(meals).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited gracefully")
}
