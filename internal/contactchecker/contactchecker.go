// Package contactchecker offers utility functions for validating
// submitted form values.
package contactchecker

import (
	"net/mail"
	"strings"

	console "github.com/fmitra/bankconsole"
)

// IsEmailValid checks if an email string is a valid format.
func IsEmailValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// Field is a named form value.
type Field struct {
	Name  string
	Value string
}

// Required returns a bad request error naming the first
// blank field.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return console.ErrBadRequest(f.Name + " is required")
		}
	}
	return nil
}

// Email returns a bad request error if the address is blank
// or malformed.
func Email(email string) error {
	if err := Required(Field{"email", email}); err != nil {
		return err
	}
	if !IsEmailValid(email) {
		return console.ErrBadRequest("invalid email address")
	}
	return nil
}
