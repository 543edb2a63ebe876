package reviews

import (
	"storefront_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ReviewRoutesManager struct {
	logger     *gecho.Logger
	storefront *services.Storefront
}

func NewReviewRoutesManager(logger *gecho.Logger, storefront *services.Storefront) *ReviewRoutesManager {
	return &ReviewRoutesManager{
		logger:     logger,
		storefront: storefront,
	}
}

func (rrm *ReviewRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", rrm.FetchReviews)

		r.Route("/form", func(r chi.Router) {
			r.Get("/", rrm.FetchForm)
			r.Patch("/", rrm.UpdateForm)
			r.Delete("/", rrm.ResetForm)
			r.Post("/submit", rrm.SubmitForm)
		})
	})
}
