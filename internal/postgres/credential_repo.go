package postgres

import (
	"context"
	"database/sql"

	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
)

// CredentialRepository is an implementation of console.CredentialRepository.
type CredentialRepository struct {
	client *Client
}

// Read retrieves the value stored under the client's key.
func (r *CredentialRepository) Read(ctx context.Context) ([]byte, error) {
	var value string

	row := r.client.queryRowContext(ctx, r.client.storageQ["byKey"], r.client.key)
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %s", r.client.key)
	}

	return []byte(value), nil
}

// Write replaces the value stored under the client's key.
func (r *CredentialRepository) Write(ctx context.Context, value []byte) error {
	_, err := r.client.execContext(ctx, r.client.storageQ["upsert"], r.client.key, string(value))
	if err != nil {
		return errors.Wrapf(err, "failed to write key %s", r.client.key)
	}

	level.Debug(r.client.logger).Log("msg", "credentials written", "key", r.client.key)
	return nil
}
