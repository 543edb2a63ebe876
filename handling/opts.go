package handling

import (
	"fmt"
	"net/http"
	"storefront_server/services"
	"storefront_server/structs"
	"strconv"
	"strings"
)

// ParseReviewListOptions parses HTTP query parameters into ReviewListOptions
func ParseReviewListOptions(r *http.Request) (services.ReviewListOptions, error) {
	query := r.URL.Query()
	opts := services.ReviewListOptions{}

	// Early return if no query params
	if len(query) == 0 {
		return opts, nil
	}

	if minRating := query.Get("min_rating"); minRating != "" {
		val, err := strconv.Atoi(minRating)
		if err != nil {
			return opts, err
		}
		if val < 1 || val > 5 {
			return opts, fmt.Errorf("min_rating must be between 1 and 5, got %d", val)
		}
		opts.MinRating = val
	}

	if recommend := strings.TrimSpace(query.Get("recommend")); recommend != "" {
		rec := structs.Recommendation(recommend)
		if !rec.IsValid() {
			return opts, services.ErrInvalidRecommendation
		}
		opts.Recommend = rec
	}

	if limit := query.Get("limit"); limit != "" {
		val, err := strconv.Atoi(limit)
		if err != nil {
			return opts, err
		}
		if val < 0 {
			return opts, fmt.Errorf("limit must not be negative, got %d", val)
		}
		opts.Limit = val
	}

	return opts, nil
}
