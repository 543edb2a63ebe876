package services

import (
	"context"
	"runtime"
	"time"

	"github.com/MonkyMars/gecho"
)

var uptimeStart time.Time

func init() {
	uptimeStart = time.Now()
}

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"`        // in seconds
	CurrentTime  time.Time `json:"current_time"`  // server current time
	ServiceAlive bool      `json:"service_alive"` // always true if service is running
	RamStats     *RamStats `json:"ram_stats"`
	Reviews      int       `json:"reviews"`
	CartItems    int       `json:"cart_items"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type cacheHealthStatus struct {
	Enabled        bool           `json:"enabled"`
	Connected      bool           `json:"connected"`
	LastChecked    time.Time      `json:"last_checked"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	Pool           map[string]any `json:"pool,omitempty"`
}

// Pinger is the part of the cache the health check needs
type Pinger interface {
	Ping(ctx context.Context) error
	GetConnectionStats() map[string]any
}

type HealthService struct {
	logger     *gecho.Logger
	cache      Pinger
	storefront *Storefront
}

// NewHealthService accepts a nil cache when rate limiting is disabled
func NewHealthService(logger *gecho.Logger, cache Pinger, storefront *Storefront) *HealthService {
	return &HealthService{
		logger:     logger,
		cache:      cache,
		storefront: storefront,
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(uptimeStart).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
		Reviews:      hs.storefront.ReviewCount(),
		CartItems:    hs.storefront.Cart().Count,
	}
}

func (hs *HealthService) GetCacheHealthStatus(ctx context.Context) (cacheHealthStatus, error) {
	if hs.cache == nil {
		return cacheHealthStatus{Enabled: false, LastChecked: time.Now()}, nil
	}

	start := time.Now()
	err := hs.cache.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := cacheHealthStatus{
		Enabled:        true,
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed,
		Pool:           hs.cache.GetConnectionStats(),
	}

	if err != nil {
		hs.logger.Error("Cache health check failed", gecho.Field("error", err))
	}

	return status, err
}
