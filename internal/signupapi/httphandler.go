package signupapi

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

// SetupHTTPHandler converts a service's public methods
// to http handlers.
func SetupHTTPHandler(svc console.SignUpAPI, router *mux.Router, logger log.Logger, lmt httpapi.LimiterFactory) {
	var handler httpapi.JSONAPIHandler
	{
		handler = svc.Register
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("SignUpAPI.Register", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "SignUpAPI.Register", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/register", httpHandler).Methods("Post")
	}
	{
		handler = svc.Activate
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("SignUpAPI.Activate", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "SignUpAPI.Activate", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/activate", httpHandler).Methods("Post")
	}
}
