package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"applyflow/internal/config"
	"applyflow/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Redis is a thin JSON cache. When the server is unreachable at startup the
// wrapper degrades to a no-op so the service keeps running; callers that need
// real storage check Available and bring their own fallback.
type Redis struct {
	client *redis.Client
	logger *logger.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, log *logger.Logger) *Redis {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, bypassing cache", "error", err)
		_ = client.Close()
		return &Redis{client: nil, logger: log}
	}

	return &Redis{client: client, logger: log}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis unavailable, bypassing cache", "error", err)
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

// GetJSON reports whether the key existed and, if so, unmarshals it into out.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}
