package postgres

import (
	"database/sql"

	"github.com/go-kit/kit/log"
)

const defaultKey = "microbank-frontend-tokens"

// NewClient returns a new Postgres client to manage repositories.
func NewClient(options ...ConfigOption) *Client {
	c := Client{
		logger:               log.NewNopLogger(),
		key:                  defaultKey,
		credentialRepository: &CredentialRepository{},
	}

	for _, opt := range options {
		opt(&c)
	}

	c.createQueries()

	// Each repository has an embedded client to ensure they
	// use the same connection and are able to share transactions.
	c.credentialRepository.client = &c

	return &c
}

// ConfigOption configures the Client.
type ConfigOption func(*Client)

// WithLogger configures the client with a Logger.
func WithLogger(l log.Logger) ConfigOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithDB configures the client with a Postgres DB.
func WithDB(db *sql.DB) ConfigOption {
	return func(c *Client) {
		c.db = db
	}
}

// WithKey sets the storage key credentials are kept under.
func WithKey(key string) ConfigOption {
	return func(c *Client) {
		c.key = key
	}
}
