// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"equifund/internal/config"
	"equifund/internal/middleware"
	"equifund/internal/repositories"
	"equifund/internal/repositories/cache"
	"equifund/internal/routes"
	"equifund/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	logLevel := slog.LevelDebug
	if config.IsProduction() {
		logLevel = slog.LevelInfo
	}
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(slogger)

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slogger.Warn("failed to close database connection", "error", err)
		}
	}()

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	slogger.Info("connected to database")

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewCacheService(redisClient, config.GetDurationEnv("CACHE_TTL", 10*time.Minute))
	defer func() {
		if err := cacheService.Close(); err != nil {
			slogger.Warn("failed to close redis connection", "error", err)
		}
	}()

	if err := cacheService.HealthCheck(context.Background()); err != nil {
		// The cache is an optimization; the service runs without it.
		slogger.Warn("redis unavailable, running uncached", "error", err)
	}

	store, err := storage.NewDiskStore(config.GetEnv("DOCUMENT_STORE_ROOT", "./data/documents"))
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(middleware.RequestID)
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Rate limit mutating wallet endpoints per client.
	for _, path := range []string{
		"/api/wallet/add-wallet-topup",
		"/api/wallet/update-wallet-topup",
		"/api/wallet/wallet-withdraw",
	} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        config.GetIntEnv("WALLET_RATE_LIMIT", 10),
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app, db, cacheService, store, slogger)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
