package redis

import (
	"github.com/go-kit/kit/log"
)

const defaultKey = "microbank-frontend-tokens"

// NewCredentialRepository returns a console.CredentialRepository
// backed by Redis.
func NewCredentialRepository(db Rediser, options ...ConfigOption) *CredentialRepository {
	r := CredentialRepository{
		logger: log.NewNopLogger(),
		db:     db,
		key:    defaultKey,
	}

	for _, opt := range options {
		opt(&r)
	}

	return &r
}

// ConfigOption configures the repository.
type ConfigOption func(*CredentialRepository)

// WithLogger configures the repository with a logger.
func WithLogger(l log.Logger) ConfigOption {
	return func(r *CredentialRepository) {
		r.logger = l
	}
}

// WithKey sets the storage key credentials are kept under.
func WithKey(key string) ConfigOption {
	return func(r *CredentialRepository) {
		r.key = key
	}
}
