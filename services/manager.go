package services

import (
	"fmt"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	Storefront    *Storefront
	CacheService  *CacheService
	HealthService *HealthService
}

// NewServiceManager loads the catalog and builds the services. CacheService is nil when rate limiting is off.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config) (*ServiceManager, error) {
	product, err := LoadProduct(cfg.Store.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	storefront, err := NewStorefront(logger, product, cfg.Store.Premium)
	if err != nil {
		return nil, err
	}

	sm := &ServiceManager{Storefront: storefront}

	var pinger Pinger
	if cfg.RateLimit.Enabled {
		sm.CacheService = NewCacheService(logger, cfg)
		pinger = sm.CacheService
	}
	sm.HealthService = NewHealthService(logger, pinger, storefront)

	logger.Info("Storefront ready",
		gecho.Field("product", product.Brand+" "+product.Name),
		gecho.Field("variants", len(product.Variants)),
		gecho.Field("premium", cfg.Store.Premium),
	)

	return sm, nil
}

func (sm *ServiceManager) Close() error {
	if sm.CacheService != nil {
		return sm.CacheService.Close()
	}
	return nil
}
