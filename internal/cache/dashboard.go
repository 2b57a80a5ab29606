package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stokpintar/backend-go/internal/config"
	"github.com/stokpintar/backend-go/internal/domain"
)

const dashboardStatsKeyPrefix = "inventory:dashboard_stats"

// DashboardCache caches dashboard stats keyed by the store's mutation version.
// Every mutation bumps the version, so a cached entry can never be served
// after the state it was computed from has changed.
type DashboardCache interface {
	GetStats(ctx context.Context, version uint64) (domain.DashboardStats, bool, error)
	SetStats(ctx context.Context, version uint64, stats domain.DashboardStats) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopDashboardCache struct{}

// NewDashboardCache returns a redis-backed cache when enabled, otherwise a noop.
func NewDashboardCache(cfg config.CacheConfig) (DashboardCache, error) {
	if !cfg.Enabled {
		return &noopDashboardCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisDashboardCache{client: client, ttl: ttl}, nil
}

// NewNoopDashboardCache returns a cache that never hits.
func NewNoopDashboardCache() DashboardCache {
	return &noopDashboardCache{}
}

func (c *redisDashboardCache) GetStats(ctx context.Context, version uint64) (domain.DashboardStats, bool, error) {
	payload, err := c.client.Get(ctx, dashboardStatsKey(version)).Bytes()
	if err == redis.Nil {
		return domain.DashboardStats{}, false, nil
	}
	if err != nil {
		return domain.DashboardStats{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return domain.DashboardStats{}, false, fmt.Errorf("decode dashboard stats cache: %w", err)
	}

	return stats, true, nil
}

func (c *redisDashboardCache) SetStats(ctx context.Context, version uint64, stats domain.DashboardStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode dashboard stats cache: %w", err)
	}

	if err := c.client.Set(ctx, dashboardStatsKey(version), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (n *noopDashboardCache) GetStats(ctx context.Context, version uint64) (domain.DashboardStats, bool, error) {
	return domain.DashboardStats{}, false, nil
}

func (n *noopDashboardCache) SetStats(ctx context.Context, version uint64, stats domain.DashboardStats) error {
	return nil
}

func dashboardStatsKey(version uint64) string {
	return fmt.Sprintf("%s:v%d", dashboardStatsKeyPrefix, version)
}
