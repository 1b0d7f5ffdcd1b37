package responselog

import (
	"time"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/entropy"
)

// defaultCapacity is the number of entries retained by the log.
const defaultCapacity = 6

// NewService returns a new console.ResponseLog.
func NewService(options ...ConfigOption) console.ResponseLog {
	s := service{
		capacity: defaultCapacity,
		now:      time.Now,
		ids:      entropy.New(),
	}

	for _, opt := range options {
		opt(&s)
	}

	return &s
}

// ConfigOption configures the service.
type ConfigOption func(*service)

// WithCapacity overrides the number of retained entries.
// Non-positive values are ignored.
func WithCapacity(n int) ConfigOption {
	return func(s *service) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithClock configures the service with a time source for
// entries recorded without a timestamp.
func WithClock(now func() time.Time) ConfigOption {
	return func(s *service) {
		s.now = now
	}
}
