package debug

import (
	"github.com/go-chi/chi/v5"
)

type RateLimitClearer interface {
	ClearRateLimits() (int, error)
}

type DebugRoutesManager struct {
	rateLimits RateLimitClearer
	production bool
}

// NewDebugRoutesManager accepts a nil clearer when rate limiting is disabled
func NewDebugRoutesManager(rateLimits RateLimitClearer, production bool) *DebugRoutesManager {
	return &DebugRoutesManager{
		rateLimits: rateLimits,
		production: production,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if drm.production || drm.rateLimits == nil {
		return
	}

	r.Route("/debug", func(r chi.Router) {
		r.Post("/ratelimit/clear", drm.ClearRateLimits)
	})
}
