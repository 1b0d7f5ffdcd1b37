package loginapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/contactchecker"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email                string `json:"email"`
	PasswordRecoveryCode string `json:"passwordRecoveryCode"`
	NewPassword          string `json:"newPassword"`
}

func decode(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}
	return nil
}

func decodeLoginRequest(r *http.Request) (*loginRequest, error) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	req.Username = strings.TrimSpace(req.Username)

	err := contactchecker.Required(
		contactchecker.Field{Name: "username", Value: req.Username},
		contactchecker.Field{Name: "password", Value: req.Password},
	)
	if err != nil {
		return nil, err
	}

	return &req, nil
}

func decodeForgotPasswordRequest(r *http.Request) (*forgotPasswordRequest, error) {
	var req forgotPasswordRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := contactchecker.Email(req.Email); err != nil {
		return nil, err
	}

	return &req, nil
}

func decodeResetPasswordRequest(r *http.Request) (*resetPasswordRequest, error) {
	var req resetPasswordRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	req.Email = strings.TrimSpace(req.Email)
	req.PasswordRecoveryCode = strings.TrimSpace(req.PasswordRecoveryCode)

	if err := contactchecker.Email(req.Email); err != nil {
		return nil, err
	}

	err := contactchecker.Required(
		contactchecker.Field{Name: "passwordRecoveryCode", Value: req.PasswordRecoveryCode},
		contactchecker.Field{Name: "newPassword", Value: req.NewPassword},
	)
	if err != nil {
		return nil, err
	}

	return &req, nil
}
