package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// ErrorLoggingMiddleware logs any errors that are returned before
// being parsed to an HTTP response.
func ErrorLoggingMiddleware(jsonHandler JSONAPIHandler, source string, logger log.Logger) JSONAPIHandler {
	return func(w http.ResponseWriter, r *http.Request) (interface{}, error) {
		response, err := jsonHandler(w, r)
		if err != nil {
			level.Info(logger).Log(
				"source", source,
				"path", r.URL.Path,
				"error", err.Error(),
				"stack_trace", fmt.Sprintf("%+v", err),
			)
		}
		return response, err
	}
}

// RateLimitMiddleware rejects requests beyond the limiter's allowance.
func RateLimitMiddleware(jsonHandler JSONAPIHandler, limiter Limiter) JSONAPIHandler {
	return func(w http.ResponseWriter, r *http.Request) (interface{}, error) {
		if err := limiter.RateLimit(r); err != nil {
			return nil, err
		}
		return jsonHandler(w, r)
	}
}
