package test

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisDB returns a redis DB for testing.
// We allocate a random DB to avoid race conditions
// in teardown/setup methods.
func NewRedisDB() (*redis.Client, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	// nolint:gosec // crypto/rand not applicable for test package
	dbNo := rand.New(rand.NewSource(time.Now().UnixNano())).Intn(16)
	redisURL := fmt.Sprintf("redis://:swordfish@%s:6379/%v", host, dbNo)

	redisConfig, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	redisConfig.DialTimeout = time.Second

	ctx := context.Background()
	db := redis.NewClient(redisConfig)
	_, err = db.Ping(ctx).Result()
	if err != nil {
		db.Close()

		return nil, err
	}

	return db, nil
}
