// Package signupapi binds the registration forms to the banking API.
package signupapi

import (
	"net/http"

	"github.com/go-kit/kit/log"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

type service struct {
	logger     log.Logger
	dispatcher console.Dispatcher
}

func (s *service) Register(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeRegisterRequest(r)
	if err != nil {
		return nil, err
	}

	_, err = s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:   "/api/v1/auth/register",
		Method: http.MethodPost,
		Body:   req,
		Label:  "Register",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Registration failed")
	}

	return httpapi.Success("Registration accepted, check your email.", nil), nil
}

func (s *service) Activate(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeActivateRequest(r)
	if err != nil {
		return nil, err
	}

	_, err = s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:   "/api/v1/auth/activate",
		Method: http.MethodPost,
		Body:   req,
		Label:  "Activate",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Activation failed")
	}

	return httpapi.Success("Account activated", nil), nil
}
