package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"shipment-service/internal/adapters/cache"
	"shipment-service/internal/adapters/repositories"
	"shipment-service/internal/api"
	"shipment-service/internal/config"
	"shipment-service/internal/platform/db"
	"shipment-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer database.Close()

	// Initialize schema and seed catalog data on startup for local runs.
	if cfg.SeedOnStart {
		if err := repositories.InitSchema(database); err != nil {
			logger.Fatal("init schema", zap.Error(err))
		}
		if err := repositories.SeedFromJSON(database, cfg.SeedPath); err != nil {
			logger.Fatal("seed catalog", zap.Error(err))
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer rdb.Close()

	catalogRepo := repositories.NewPostgresCatalogRepository(database)
	catalog := cache.NewCachedCatalog(
		catalogRepo,
		cache.NewRedisCache(rdb, "catalog", logger),
		cfg.CatalogTTL,
	)
	store := repositories.NewPostgresShipmentRepository(database)

	router := api.NewRouter(api.RouterConfig{
		Catalog:       catalog,
		Store:         store,
		TrackingCache: cache.NewRedisCache(rdb, "tracking", logger),
		TrackingTTL:   cfg.TrackingTTL,
		StrictPricing: cfg.PricingStrict,
		Logger:        logger,
	})

	logger.Info("server listening",
		zap.String("addr", ":"+cfg.Port),
		zap.Bool("pricing_strict", cfg.PricingStrict),
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}
