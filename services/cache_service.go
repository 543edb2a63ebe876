package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"storefront_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// CacheService keeps rate limit counters in Redis with connection pooling and retry logic
type CacheService struct {
	logger     *gecho.Logger
	config     *structs.Config
	client     *redis.Client
	maxRetries int
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger:     logger,
		config:     cfg,
		client:     newRedisClient(cfg.Cache),
		maxRetries: 3,
	}
}

// newRedisClient does not dial; the pool connects on first use
func newRedisClient(cfg *structs.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,

		// Connection pool settings
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,

		// Retry settings
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: cfg.MinRetryBackoff,
		MaxRetryBackoff: cfg.MaxRetryBackoff,
	})
}

func (cs *CacheService) Close() error {
	return cs.client.Close()
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt <= cs.maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == cs.maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableError(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff(attempt)):
		}
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", cs.maxRetries, lastErr)
}

// retryBackoff doubles from 100ms up to 2s, then keeps a random 50-100% of it
func retryBackoff(attempt int) time.Duration {
	base := 100        // 100ms base
	maxBackoff := 2000 // max 2s

	backoff := min(base*(1<<attempt), maxBackoff)
	jitter := rand.IntN(backoff/2 + 1)
	return time.Duration(backoff/2+jitter) * time.Millisecond
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

func rateLimitKey(ip, endpoint string) string {
	return fmt.Sprintf("%s%s:%s", rateLimitKeyPrefix, ip, endpoint)
}

// IncrementRateLimit atomically increments a rate limit counter, starting its window on the first hit
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	ctx := context.Background()
	key := rateLimitKey(ip, endpoint)

	var result int64
	err := cs.withRetry(ctx, func() error {
		val, err := cs.client.Incr(ctx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(ctx, key, window).Err()
		}

		return nil
	})

	return int(result), err
}

// ClearRateLimits removes every rate limit counter using SCAN and returns how many were deleted
func (cs *CacheService) ClearRateLimits() (int, error) {
	ctx := context.Background()
	deletedCount := 0

	err := cs.withRetry(ctx, func() error {
		var cursor uint64
		deletedCount = 0

		for {
			keys, nextCursor, err := cs.client.Scan(ctx, cursor, rateLimitKeyPrefix+"*", 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if len(keys) > 0 {
				if err := cs.client.Del(ctx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
				deletedCount += len(keys)
			}

			cursor = nextCursor
			if cursor == 0 {
				break
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	cs.logger.Info("Rate limit counters cleared", gecho.Field("deleted", deletedCount))
	return deletedCount, nil
}

// Ping tests the Redis connection
func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.withRetry(ctx, func() error {
		return cs.client.Ping(ctx).Err()
	})
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
