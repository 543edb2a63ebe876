package products

import (
	"storefront_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger     *gecho.Logger
	storefront *services.Storefront
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	storefront *services.Storefront,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:     logger,
		storefront: storefront,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/product", prm.FetchProduct)
	r.Post("/product/variant/{index}", prm.SelectVariant)
}
