package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stephen-1-2/Anonymous-Wall/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

// InitRedis connects the optional Redis client. The wall works without it;
// upload throttling falls back to the in-memory IP limiter.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, upload throttling uses in-memory limiter only")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Upload throttling uses in-memory limiter only.", err)
		Redis = nil
		return
	}
	log.Println("Connected to Redis successfully")
}

// CheckSubmitLimit counts submissions per identity in a rolling window.
// Returns true when the caller is still under the limit.
func CheckSubmitLimit(identity string, limit int, window time.Duration) (bool, error) {
	if Redis == nil {
		return true, nil
	}

	key := fmt.Sprintf("submit_limit:%s", identity)
	count, err := Redis.Incr(Ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		Redis.Expire(Ctx, key, window)
	}

	return count <= int64(limit), nil
}
