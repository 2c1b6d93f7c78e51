package api

import (
	"net/http"
	"time"

	"shipment-service/internal/api/handlers"
	"shipment-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Catalog       ports.CatalogRepository
	Store         ports.ShipmentRepository
	TrackingCache ports.KVCache
	TrackingTTL   time.Duration
	StrictPricing bool
	Logger        *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	catalogHandler := &handlers.CatalogHandler{Repo: cfg.Catalog, Logger: cfg.Logger}
	quoteHandler := &handlers.QuoteHandler{Catalog: cfg.Catalog, Logger: cfg.Logger}
	shipmentHandler := &handlers.ShipmentHandler{
		Catalog:       cfg.Catalog,
		Store:         cfg.Store,
		StrictPricing: cfg.StrictPricing,
		Logger:        cfg.Logger,
	}
	trackingHandler := &handlers.TrackingHandler{
		Store:  cfg.Store,
		Cache:  cfg.TrackingCache,
		TTL:    cfg.TrackingTTL,
		Logger: cfg.Logger,
	}

	r := chi.NewRouter()

	// The web frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(requestLogger(cfg.Logger))

	r.Get("/health", handlers.Health)

	r.Route("/config", func(r chi.Router) {
		r.Get("/package-types", catalogHandler.ListPackageTypes)
		r.Get("/payment-methods", catalogHandler.ListPaymentMethods)
		r.Get("/departments", catalogHandler.ListDepartments)
		r.Get("/service-types", catalogHandler.ListServiceTypes)
		r.Post("/quote", quoteHandler.Quote)
	})

	r.Post("/shipments", shipmentHandler.Create)
	r.Get("/tracking/{trackingNumber}", trackingHandler.Get)

	return r
}
