package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) ClearRateLimits(w http.ResponseWriter, r *http.Request) {
	deleted, err := drm.rateLimits.ClearRateLimits()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.rateLimit.clearFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.rateLimit.cleared"),
		gecho.WithData(map[string]any{"deleted": deleted}),
		gecho.Send(),
	)
}
