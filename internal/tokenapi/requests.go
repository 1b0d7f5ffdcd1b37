package tokenapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type baseURLRequest struct {
	BaseURL string `json:"baseUrl"`
}

// decodeRefreshRequest accepts an empty body, in which case the
// stored refresh token is used.
func decodeRefreshRequest(r *http.Request, stored string) (*refreshRequest, error) {
	var req refreshRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}

	req.RefreshToken = strings.TrimSpace(req.RefreshToken)
	if req.RefreshToken == "" {
		req.RefreshToken = stored
	}
	if req.RefreshToken == "" {
		return nil, console.ErrBadRequest("refreshToken is required")
	}

	return &req, nil
}

// decodeBaseURLRequest accepts a blank base URL, which restores
// the default.
func decodeBaseURLRequest(r *http.Request) (*baseURLRequest, error) {
	var req baseURLRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return nil, errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}

	req.BaseURL = strings.TrimSpace(req.BaseURL)
	if req.BaseURL == "" {
		return &req, nil
	}

	u, err := url.Parse(req.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, console.ErrBadRequest("baseUrl must be an absolute http or https URL")
	}

	return &req, nil
}
