package dispatcher

import (
	"net/http"
	"time"

	"github.com/go-kit/kit/log"

	console "github.com/fmitra/bankconsole"
)

// NewService returns a new console.Dispatcher. Credentials are read from
// the TokenStore on every call and attempts are recorded in the ResponseLog.
func NewService(tokens console.TokenStore, responses console.ResponseLog, options ...ConfigOption) console.Dispatcher {
	s := service{
		logger:    log.NewNopLogger(),
		client:    &http.Client{},
		tokens:    tokens,
		responses: responses,
		baseURL:   console.DefaultBaseURL,
		now:       time.Now,
	}

	for _, opt := range options {
		opt(&s)
	}

	return &s
}

// ConfigOption configures the service.
type ConfigOption func(*service)

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WithLogger configures the service with a logger.
func WithLogger(l log.Logger) ConfigOption {
	return func(s *service) {
		s.logger = l
	}
}

// WithClient configures the service with an HTTP client. The default
// client has no timeout.
func WithClient(c Doer) ConfigOption {
	return func(s *service) {
		s.client = c
	}
}

// WithBaseURL sets the initial origin for relative paths.
func WithBaseURL(baseURL string) ConfigOption {
	return func(s *service) {
		s.baseURL = baseURL
	}
}

// WithClock configures the service with a time source for log entries.
func WithClock(now func() time.Time) ConfigOption {
	return func(s *service) {
		s.now = now
	}
}
