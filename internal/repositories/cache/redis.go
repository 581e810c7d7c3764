// Package cache provides the Redis-backed fee schedule cache. Reads go
// cache-first; any cache failure falls through to the system of record, so
// Redis being down never breaks a fee computation.
package cache

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewRedisClient creates a Redis client from the given config.
func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ScheduleKeyByID keys a cached schedule by its prescribed activity id.
func ScheduleKeyByID(prescribedActivityID string) string {
	return "schedule:id:" + prescribedActivityID
}

// ScheduleKeyByClassification keys a cached schedule by the classification
// triple. Fields are lowercased so lookups are insensitive to intake casing.
func ScheduleKeyByClassification(activityLevel, activityType, activitySubCategory string) string {
	return "schedule:cls:" + strings.ToLower(strings.Join(
		[]string{activityLevel, activityType, activitySubCategory}, ":",
	))
}
