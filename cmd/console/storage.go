package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/go-kit/kit/log"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/filestore"
	"github.com/fmitra/bankconsole/internal/postgres"
	redisstore "github.com/fmitra/bankconsole/internal/redis"
)

// defaultStorePath returns the file backend location under the
// user's config directory.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "bankconsole", "tokens.json")
}

// openRepository returns the configured CredentialRepository and a
// function releasing its connection.
func openRepository(ctx context.Context, logger log.Logger) (console.CredentialRepository, func() error, error) {
	key := viper.GetString("store.key")
	noop := func() error { return nil }

	switch backend := viper.GetString("store.backend"); backend {
	case "file":
		path := viper.GetString("store.path")
		if path == "" {
			path = defaultStorePath()
		}
		repo := filestore.NewCredentialRepository(
			path,
			filestore.WithLogger(logger),
			filestore.WithKey(key),
		)
		return repo, noop, nil
	case "redis":
		redisConf, err := redis.ParseURL(viper.GetString("redis.conn-string"))
		if err != nil {
			return nil, noop, errors.Wrap(err, "invalid redis configuration")
		}
		redisDB := redis.NewClient(redisConf)
		if _, err = redisDB.Ping(ctx).Result(); err != nil {
			redisDB.Close()
			return nil, noop, errors.Wrap(err, "redis connection failed")
		}
		repo := redisstore.NewCredentialRepository(
			redisDB,
			redisstore.WithLogger(logger),
			redisstore.WithKey(key),
		)
		return repo, redisDB.Close, nil
	case "postgres":
		pgDB, err := sql.Open("postgres", viper.GetString("pg.conn-string"))
		if err != nil {
			return nil, noop, errors.Wrap(err, "postgres connection failed")
		}
		if err = pgDB.PingContext(ctx); err != nil {
			pgDB.Close()
			return nil, noop, errors.Wrap(err, "postgres did not respond")
		}
		if _, err = pgDB.ExecContext(ctx, console.Schema); err != nil {
			pgDB.Close()
			return nil, noop, errors.Wrap(err, "failed to create tables")
		}
		client := postgres.NewClient(
			postgres.WithLogger(logger),
			postgres.WithDB(pgDB),
			postgres.WithKey(key),
		)
		return client.Credentials(), pgDB.Close, nil
	default:
		return nil, noop, errors.Errorf("unknown storage backend %q", backend)
	}
}

// loadTokens restores persisted tokens. The repository is released
// when loading fails since the caller exits without running defers.
func loadTokens(ctx context.Context, tokens console.TokenStore, closeRepo func() error) error {
	if _, err := tokens.Load(ctx); err != nil {
		if closeErr := closeRepo(); closeErr != nil {
			return errors.Wrapf(err, "failed to close token storage (%v)", closeErr)
		}
		return err
	}
	return nil
}
