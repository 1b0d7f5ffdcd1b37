package requestapi

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

// SetupHTTPHandler converts a service's public methods
// to http handlers.
func SetupHTTPHandler(svc console.RequestAPI, router *mux.Router, logger log.Logger, lmt httpapi.LimiterFactory) {
	var handler httpapi.JSONAPIHandler
	{
		handler = svc.Custom
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("RequestAPI.Custom", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "RequestAPI.Custom", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/request", httpHandler).Methods("Post")
	}
	{
		handler = svc.Profile
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("RequestAPI.Profile", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "RequestAPI.Profile", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/profile", httpHandler).Methods("Post")
	}
	{
		handler = svc.Accounts
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("RequestAPI.Accounts", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "RequestAPI.Accounts", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/accounts", httpHandler).Methods("Post")
	}
	{
		handler = svc.Transactions
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("RequestAPI.Transactions", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "RequestAPI.Transactions", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/transactions", httpHandler).Methods("Post")
	}
	{
		handler = svc.Log
		handler = httpapi.ErrorLoggingMiddleware(handler, "RequestAPI.Log", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/log", httpHandler).Methods("Get")
	}
}
