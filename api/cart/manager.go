package cart

import (
	"storefront_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CartRoutesManager struct {
	logger     *gecho.Logger
	storefront *services.Storefront
}

func NewCartRoutesManager(logger *gecho.Logger, storefront *services.Storefront) *CartRoutesManager {
	return &CartRoutesManager{
		logger:     logger,
		storefront: storefront,
	}
}

func (crm *CartRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", crm.FetchCart)
		r.Post("/items", crm.AddItem)
		r.Delete("/items", crm.RemoveItem)
	})
}
