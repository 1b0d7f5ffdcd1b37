// Package tokenapi binds the token refresh form and the token view.
package tokenapi

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

// Refresh exchanges a refresh token for new tokens. The stored refresh
// token is used when none is submitted.
func (s *service) Refresh(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	ctx := r.Context()

	req, err := decodeRefreshRequest(r, s.tokens.Credentials().RefreshToken)
	if err != nil {
		return nil, err
	}

	payload, err := s.dispatcher.Dispatch(ctx, &console.Request{
		Path:   "/api/v1/auth/refresh-token",
		Method: http.MethodPost,
		Body:   req,
		Label:  "Refresh token",
	})
	if err != nil {
		return nil, console.WithFallback(err, "Refresh failed")
	}

	creds, err := s.tokens.Apply(ctx, payload.Data())
	if err != nil {
		return nil, err
	}

	return httpapi.Success("Token refreshed", newTokenView(creds, s.dispatcher.BaseURL())), nil
}

// Show describes the stored tokens.
func (s *service) Show(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	return newTokenView(s.tokens.Credentials(), s.dispatcher.BaseURL()), nil
}

// SetBaseURL changes the origin used for relative request paths.
func (s *service) SetBaseURL(w http.ResponseWriter, r *http.Request) (interface{}, error) {
	req, err := decodeBaseURLRequest(r)
	if err != nil {
		return nil, err
	}

	s.dispatcher.SetBaseURL(req.BaseURL)
	level.Info(s.logger).Log("msg", "base url updated", "base_url", s.dispatcher.BaseURL())

	return httpapi.Success("Base URL updated", newTokenView(s.tokens.Credentials(), s.dispatcher.BaseURL())), nil
}
