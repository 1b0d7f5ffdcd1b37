// Package requestapi binds the authenticated read buttons, the custom
// request form and the response log view.
package requestapi

import (
	"fmt"
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

type service struct {
	logger     log.Logger
	dispatcher console.Dispatcher
	responses  console.ResponseLog
}

func (s *service) Profile(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	return s.read(r, "/api/v1/auth/users/me", "Profile"), nil
}

func (s *service) Accounts(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	return s.read(r, "/api/v1/accounts", "Accounts"), nil
}

func (s *service) Transactions(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	return s.read(r, "/api/v1/transactions", "Transactions"), nil
}

// read performs an authenticated GET and returns the response log.
// The outcome is only visible through the log.
func (s *service) read(r *http.Request, path, label string) *logView {
	_, err := s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:        path,
		Method:      http.MethodGet,
		IncludeAuth: true,
		Label:       label,
	})
	if err != nil {
		level.Debug(s.logger).Log("msg", "read failed", "label", label, "error", err)
	}

	return newLogView(s.responses)
}

func (s *service) Custom(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeCustomRequest(r)
	if err != nil {
		return nil, err
	}

	payload, err := s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:        req.Endpoint,
		Method:      req.Method,
		Body:        parseBody(req.Body),
		IncludeAuth: true,
		Label:       fmt.Sprintf("Custom %s %s", req.Method, req.Endpoint),
	})
	if err != nil {
		return nil, console.WithFallback(err, "Request failed")
	}

	return httpapi.Success("Request sent", payload), nil
}

func (s *service) Log(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	return newLogView(s.responses), nil
}
