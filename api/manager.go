package api

import (
	"storefront_server/api/cart"
	"storefront_server/api/debug"
	"storefront_server/api/health"
	"storefront_server/api/products"
	"storefront_server/api/reviews"
	"storefront_server/services"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	cartRoutes    *cart.CartRoutesManager
	reviewRoutes  *reviews.ReviewRoutesManager
	healthRoutes  *health.HealthRoutesManager
	debugRoutes   *debug.DebugRoutesManager
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager) *routerManager {
	// avoid a typed nil inside the interface
	var clearer debug.RateLimitClearer
	if sm.CacheService != nil {
		clearer = sm.CacheService
	}

	return &routerManager{
		productRoutes: products.NewProductRoutesManager(logger, sm.Storefront),
		cartRoutes:    cart.NewCartRoutesManager(logger, sm.Storefront),
		reviewRoutes:  reviews.NewReviewRoutesManager(logger, sm.Storefront),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		debugRoutes:   debug.NewDebugRoutesManager(clearer, cfg.Server.Environment == "production"),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.cartRoutes.RegisterRoutes(r)
	rm.reviewRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
