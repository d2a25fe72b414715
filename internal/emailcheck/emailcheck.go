// Package emailcheck performs syntax-level validation of email addresses.
// It never contacts a mail server or resolves DNS.
package emailcheck

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalid = errors.New("invalid email format")

var validate = validator.New()

// Validate returns ErrInvalid unless email is a syntactically valid address
// with no surrounding whitespace.
func Validate(email string) error {
	if email == "" || strings.TrimSpace(email) != email {
		return ErrInvalid
	}
	if err := validate.Var(email, "email"); err != nil {
		return ErrInvalid
	}
	return nil
}
