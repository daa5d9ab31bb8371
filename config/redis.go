package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the optional client behind alert deduplication and pub/sub
// fan-out. It stays nil when REDIS_ADDR is unset: the monitoring views
// never touch it, only the broadcast path, which then skips dedup.
var Redis *redis.Client

const (
	alertDedupTTL   = 5 * time.Minute
	alertPubChannel = "monitoring:alerts"
)

// InitRedis connects the alert-dedup client if REDIS_ADDR is set.
func InitRedis(ctx context.Context) error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       GetEnvInt("REDIS_DB", 0),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	Redis = client
	return nil
}

// CheckAlertDedup reports whether the same alert message fired for this
// transport inside the dedup window. Without redis nothing is deduped.
func CheckAlertDedup(ctx context.Context, transportID uint, message string) (bool, error) {
	if Redis == nil {
		return false, nil
	}
	key := fmt.Sprintf("alert:%d:%s", transportID, message)
	count, err := Redis.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check failed: %w", err)
	}
	return count > 0, nil
}

// SetAlertDedup marks the alert as fired for the dedup window.
func SetAlertDedup(ctx context.Context, transportID uint, message string) error {
	if Redis == nil {
		return nil
	}
	key := fmt.Sprintf("alert:%d:%s", transportID, message)
	return Redis.Set(ctx, key, "1", alertDedupTTL).Err()
}

// PublishAlert pushes the serialized alert event to subscribers.
func PublishAlert(ctx context.Context, payload []byte) error {
	if Redis == nil {
		return nil
	}
	return Redis.Publish(ctx, alertPubChannel, payload).Err()
}
