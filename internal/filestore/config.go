package filestore

import (
	"github.com/go-kit/kit/log"
)

const defaultKey = "microbank-frontend-tokens"

// NewCredentialRepository returns a console.CredentialRepository
// persisted to a JSON file at path.
func NewCredentialRepository(path string, options ...ConfigOption) *CredentialRepository {
	r := CredentialRepository{
		logger: log.NewNopLogger(),
		path:   path,
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
