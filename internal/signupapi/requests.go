package signupapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/contactchecker"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type activateRequest struct {
	Email          string `json:"email"`
	ActivationCode string `json:"activationCode"`
}

func decodeRegisterRequest(r *http.Request) (*registerRequest, error) {
	var req registerRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return nil, errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	err = contactchecker.Required(
		contactchecker.Field{Name: "username", Value: req.Username},
		contactchecker.Field{Name: "password", Value: req.Password},
		contactchecker.Field{Name: "firstName", Value: req.FirstName},
		contactchecker.Field{Name: "lastName", Value: req.LastName},
	)
	if err != nil {
		return nil, err
	}

	if err = contactchecker.Email(req.Email); err != nil {
		return nil, err
	}

	return &req, nil
}

func decodeActivateRequest(r *http.Request) (*activateRequest, error) {
	var req activateRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return nil, errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}

	req.Email = strings.TrimSpace(req.Email)
	req.ActivationCode = strings.TrimSpace(req.ActivationCode)

	if err = contactchecker.Email(req.Email); err != nil {
		return nil, err
	}

	err = contactchecker.Required(
		contactchecker.Field{Name: "activationCode", Value: req.ActivationCode},
	)
	if err != nil {
		return nil, err
	}

	return &req, nil
}
