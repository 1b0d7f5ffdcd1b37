package loginapi

import (
	"github.com/go-kit/kit/log"

	console "github.com/fmitra/bankconsole"
)

// NewService returns a new implementation of console.LoginAPI.
func NewService(options ...ConfigOption) console.LoginAPI {
	s := service{
		logger: log.NewNopLogger(),
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

// WithDispatcher configures the service with a Dispatcher
// for calls to the banking API.
func WithDispatcher(d console.Dispatcher) ConfigOption {
	return func(s *service) {
		s.dispatcher = d
	}
}

// WithTokenStore configures the service with a TokenStore
// to keep issued tokens.
func WithTokenStore(t console.TokenStore) ConfigOption {
	return func(s *service) {
		s.tokens = t
	}
}
