package tokenstore

import (
	"github.com/go-kit/kit/log"

	console "github.com/fmitra/bankconsole"
)

// NewService returns a new console.TokenStore backed by a repository.
func NewService(repo console.CredentialRepository, options ...ConfigOption) console.TokenStore {
	s := service{
		logger: log.NewNopLogger(),
		repo:   repo,
	}

	for _, opt := range options {
		opt(&s)
	}

	return &s
}

// ConfigOption configures the service.
type ConfigOption func(*service)

// WithLogger configures the service with a logger.
func WithLogger(l log.Logger) ConfigOption {
	return func(s *service) {
		s.logger = l
	}
}
