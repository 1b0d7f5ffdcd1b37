// Package redis stores console state in Redis.
package redis

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	redislib "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// Rediser is an interface to go-redis.
type Rediser interface {
	Get(ctx context.Context, key string) *redislib.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redislib.StatusCmd
}

// CredentialRepository is an implementation of console.CredentialRepository.
type CredentialRepository struct {
	logger log.Logger
	db     Rediser
	key    string
}

// Read retrieves the value stored under the repository's key.
func (r *CredentialRepository) Read(ctx context.Context) ([]byte, error) {
	value, err := r.db.Get(ctx, r.key).Bytes()
	if err == redislib.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %s", r.key)
	}

	return value, nil
}

// Write replaces the value stored under the repository's key.
// Values never expire.
func (r *CredentialRepository) Write(ctx context.Context, value []byte) error {
	if err := r.db.Set(ctx, r.key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write key %s", r.key)
	}

	level.Debug(r.logger).Log("msg", "credentials written", "key", r.key)
	return nil
}
