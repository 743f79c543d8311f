// Package main is the entry point for the portfolio backend.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/config"
	"github.com/codeyousef/portfolio-sub001/internal/handlers"
	"github.com/codeyousef/portfolio-sub001/internal/logging"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
	"github.com/codeyousef/portfolio-sub001/internal/routes"
	"github.com/codeyousef/portfolio-sub001/internal/service"
	"github.com/codeyousef/portfolio-sub001/pkg/database"
	"github.com/codeyousef/portfolio-sub001/pkg/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		logging.Fatal("failed to connect to database", slog.Any("error", err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logging.Fatal("failed to access database pool", slog.Any("error", err))
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(redis.Options{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logging.Fatal("failed to connect to redis", slog.Any("error", err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	// Initialize services
	clock := service.SystemClock()
	tokenService := service.NewTokenService(cfg.SessionSecret, cfg.SessionExpiry, clock)
	authService := service.NewAuthService(userRepo, tokenService, redisClient, clock)
	blogService := service.NewBlogService(blogRepo, clock)
	projectService := service.NewProjectService(projectRepo, clock)
	catalogService := service.NewCatalogService(serviceRepo, clock)
	userService := service.NewUserService(userRepo, clock)

	// Initialize handlers
	cookies := handlers.NewCookieHelper(handlers.CookieConfig{
		Domain:   cfg.CookieDomain,
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite(),
	})
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, cookies),
		Blog:     handlers.NewBlogHandler(blogService),
		Projects: handlers.NewProjectHandler(projectService),
		Services: handlers.NewServiceHandler(catalogService),
		Users:    handlers.NewUserHandler(userService),
		Health: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"database": handlers.PingerFunc(sqlDB.PingContext),
			"redis": handlers.PingerFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}),
		}),
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, cfg, authService, h)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting portfolio backend", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", slog.Any("error", err))
	}
}
