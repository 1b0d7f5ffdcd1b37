// Package loginapi binds the login and password recovery forms
// to the banking API.
package loginapi

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/httpapi"
)

type service struct {
	logger     log.Logger
	dispatcher console.Dispatcher
	tokens     console.TokenStore
}

func (s *service) Login(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	ctx := r.Context()

	req, err := decodeLoginRequest(r)
	if err != nil {
		return nil, err
	}

	payload, err := s.dispatcher.Dispatch(ctx, &console.Request{
		Path:   "/api/v1/auth/login",
		Method: http.MethodPost,
		Body:   req,
		Label:  "Login",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Login failed")
	}

	if _, err = s.tokens.Apply(ctx, payload.Data()); err != nil {
		return nil, err
	}

	level.Debug(s.logger).Log("msg", "signed in", "username", req.Username)
	return httpapi.Success("Signed in", nil), nil
}

func (s *service) ForgotPassword(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeForgotPasswordRequest(r)
	if err != nil {
		return nil, err
	}

	_, err = s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:   "/api/v1/auth/forgot-password",
		Method: http.MethodPost,
		Body:   req,
		Label:  "Forgot password",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Password recovery failed")
	}

	return httpapi.Success("Recovery code sent", nil), nil
}

func (s *service) ResetPassword(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeResetPasswordRequest(r)
	if err != nil {
		return nil, err
	}

	_, err = s.dispatcher.Dispatch(r.Context(), &console.Request{
		Path:   "/api/v1/auth/reset-password",
		Method: http.MethodPatch,
		Body:   req,
		Label:  "Reset password",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Password reset failed")
	}

	return httpapi.Success("Password updated", nil), nil
}
