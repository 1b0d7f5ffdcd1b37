package httpapi

import (
	"net/http"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"

	console "github.com/fmitra/bankconsole"
)

// Rate is the rate of allowed requests. We support
// r/min and r/second.
type Rate string

const (
	// PerSecond allows us to accept x requests per second
	PerSecond Rate = "per_second"
	// PerMinute allows us to accept x requests per minute
	PerMinute Rate = "per_minute"
)

// Limiter provides rate limiting tooling
type Limiter interface {
	// RateLimit applies basic rate limiting to an HTTP request.
	RateLimit(r *http.Request) error
}

// LimiterFactory creates new Limiters
type LimiterFactory interface {
	// NewLimiter returns a new Limiter.
	NewLimiter(prefix string, rate Rate, max int64) Limiter
}

// DefaultLimit is the number of requests per second a console
// endpoint accepts from one client.
const DefaultLimit = 10

type factory struct {
	limit int64
}

type ratelimiter struct {
	prefix string
	lmt    *limiter.Limiter
}

// NewLimiter creates a new Limiter keyed by client IP.
func (f *factory) NewLimiter(prefix string, rate Rate, max int64) Limiter {
	if f.limit > 0 {
		max = f.limit
	}
	perSecond := float64(max)
	if rate == PerMinute {
		perSecond = float64(max) / 60
	}

	lmt := tollbooth.NewLimiter(perSecond, nil)
	lmt.SetBurst(int(max))
	lmt.SetIPLookups([]string{"X-Forwarded-For", "X-Real-IP", "RemoteAddr"})

	return &ratelimiter{prefix: prefix, lmt: lmt}
}

// RateLimit applies a token bucket per client IP.
func (l *ratelimiter) RateLimit(r *http.Request) error {
	keys := tollbooth.BuildKeys(l.lmt, r)
	for _, key := range keys {
		if tollbooth.LimitByKeys(l.lmt, append([]string{l.prefix}, key...)) != nil {
			return console.ErrThrottle("requests are throttled, try again later")
		}
	}
	return nil
}

// NewRateLimiter returns a new LimiterFactory. A positive limit
// replaces the maximum requested by each limiter.
func NewRateLimiter(limit int64) LimiterFactory {
	return &factory{limit: limit}
}
