package middleware

import (
	"storefront_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RateCounter counts hits per client and endpoint inside a window
type RateCounter interface {
	IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error)
}

type Middleware struct {
	cfg     *structs.Config
	logger  *gecho.Logger
	counter RateCounter
}

// NewMiddleware accepts a nil counter; rate limiting then lets every request through
func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, counter RateCounter) *Middleware {
	return &Middleware{
		cfg:     cfg,
		logger:  logger,
		counter: counter,
	}
}
