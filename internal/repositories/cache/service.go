package cache

import (
	"context"
	"encoding/json"
	"time"

	"permitdesk/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps the Redis client with schedule-aware operations.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a schedule cache with the given TTL.
func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

// GetSchedule returns the cached schedule row for the key, or an error on a
// miss or a decode failure.
func (s *CacheService) GetSchedule(ctx context.Context, key string) (*models.PrescribedActivity, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var row models.PrescribedActivity
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// SetSchedule caches a schedule row under the key for the configured TTL.
func (s *CacheService) SetSchedule(ctx context.Context, key string, row *models.PrescribedActivity) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Delete removes a cached entry.
func (s *CacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// FlushAll clears the cache. Used on startup so stale reference data never
// outlives a reseed.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Ping checks Redis connectivity.
func (s *CacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
