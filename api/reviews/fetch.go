package reviews

import (
	"net/http"
	"storefront_server/handling"
	"storefront_server/services"

	"github.com/MonkyMars/gecho"
)

// FetchReviews handles GET /reviews with optional min_rating, recommend and limit filters
func (rrm *ReviewRoutesManager) FetchReviews(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseReviewListOptions(r)
	if err != nil {
		rrm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	reviews := rrm.storefront.Reviews(opts)
	total := rrm.storefront.ReviewCount()

	data := map[string]any{
		"reviews": reviews,
		"empty":   total == 0,
		"meta": map[string]any{
			"count":   len(reviews),
			"total":   total,
			"filters": opts,
		},
	}
	if total == 0 {
		data["message"] = services.EmptyReviewsMessage
	}

	gecho.Success(w,
		gecho.WithData(data),
		gecho.Send(),
	)
}
