// Package postgres stores console state in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/go-kit/kit/log"
	// pg driver registers itself as being available to the database/sql package.
	_ "github.com/lib/pq"

	console "github.com/fmitra/bankconsole"
)

// Client represents a client for PostgreSQL.
type Client struct {
	db     *sql.DB
	logger log.Logger
	key    string

	credentialRepository *CredentialRepository
	storageQ             map[string]string
}

func (c *Client) createQueries() {
	c.storageQ = map[string]string{
		"byKey": `
			SELECT value
			FROM console_storage
			WHERE key = $1;
		`,
		"upsert": `
			INSERT INTO console_storage (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key)
			DO UPDATE SET value = EXCLUDED.value, updated_at = current_timestamp;
		`,
	}
}

// Credentials returns the CredentialRepository.
func (c *Client) Credentials() console.CredentialRepository {
	return c.credentialRepository
}

func (c *Client) queryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

func (c *Client) execContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}
