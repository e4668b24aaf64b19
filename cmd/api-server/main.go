package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/max-shi/game-api-server/database"
	"github.com/max-shi/game-api-server/internal/config"
	"github.com/max-shi/game-api-server/internal/handler"
	"github.com/max-shi/game-api-server/internal/middleware"
	"github.com/max-shi/game-api-server/internal/repository"
	"github.com/max-shi/game-api-server/internal/service"
	"github.com/max-shi/game-api-server/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))

	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db)

	userImages, err := storage.NewImageStore(cfg.UserImagePath, "user")
	if err != nil {
		log.Fatalf("could not initialise user image store: %v", err)
	}
	gameImages, err := storage.NewImageStore(cfg.GameImagePath, "game")
	if err != nil {
		log.Fatalf("could not initialise game image store: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	gameRepo := repository.NewGameRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	gameService := service.NewGameService(gameRepo, genreRepo, platformRepo, reviewRepo, libraryRepo)
	reviewService := service.NewReviewService(reviewRepo, gameRepo)
	libraryService := service.NewLibraryService(libraryRepo, gameRepo)
	imageService := service.NewImageService(userRepo, gameRepo, userImages, gameImages)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	gameHandler := handler.NewGameHandler(gameService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	imageHandler := handler.NewImageHandler(imageService, cfg.UploadMaxSize)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	requireAuth := middleware.RequireAuth(userService)
	optionalAuth := middleware.OptionalAuth(userService)

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		userHandler.RegisterRoutes(users, requireAuth, optionalAuth)
		imageHandler.RegisterUserRoutes(users, requireAuth)

		games := api.Group("/games")
		gameHandler.RegisterRoutes(games, requireAuth, optionalAuth)
		reviewHandler.RegisterRoutes(games, requireAuth)
		libraryHandler.RegisterRoutes(games, requireAuth)
		imageHandler.RegisterGameRoutes(games, requireAuth)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}
	logger.Info("Server starting", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
