package tokenapi

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

// SetupHTTPHandler converts a service's public methods
// to http handlers.
func SetupHTTPHandler(svc console.TokenAPI, router *mux.Router, logger log.Logger, lmt httpapi.LimiterFactory) {
	var handler httpapi.JSONAPIHandler
	{
		handler = svc.Refresh
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("TokenAPI.Refresh", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "TokenAPI.Refresh", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/refresh", httpHandler).Methods("Post")
	}
	{
		handler = svc.Show
		handler = httpapi.ErrorLoggingMiddleware(handler, "TokenAPI.Show", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/tokens", httpHandler).Methods("Get")
	}
	{
		handler = svc.SetBaseURL
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("TokenAPI.SetBaseURL", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "TokenAPI.SetBaseURL", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/base-url", httpHandler).Methods("Put")
	}
}
