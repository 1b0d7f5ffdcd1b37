package loginapi

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

// SetupHTTPHandler converts a service's public methods
// to http handlers.
func SetupHTTPHandler(svc console.LoginAPI, router *mux.Router, logger log.Logger, lmt httpapi.LimiterFactory) {
	var handler httpapi.JSONAPIHandler
	{
		handler = svc.Login
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("LoginAPI.Login", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "LoginAPI.Login", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/login", httpHandler).Methods("Post")
	}
	{
		handler = svc.ForgotPassword
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("LoginAPI.ForgotPassword", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "LoginAPI.ForgotPassword", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/forgot-password", httpHandler).Methods("Post")
	}
	{
		handler = svc.ResetPassword
		handler = httpapi.RateLimitMiddleware(handler, lmt.NewLimiter("LoginAPI.ResetPassword", httpapi.PerSecond, httpapi.DefaultLimit))
		handler = httpapi.ErrorLoggingMiddleware(handler, "LoginAPI.ResetPassword", logger)
		httpHandler := httpapi.ToHandlerFunc(handler, http.StatusOK)
		router.HandleFunc("/console/reset-password", httpHandler).Methods("Post")
	}
}
