package services

import (
	"errors"
	"fmt"

	"tokoadmin/internal/validation"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnauthenticated is returned when a mutation has no caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the caller does not own the store.
	ErrForbidden = errors.New("unauthorized")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ConflictError reports that another account already uses Field.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Field == "email" {
		return fmt.Sprintf("email '%s' already registered", e.Value)
	}
	return fmt.Sprintf("%s '%s' already taken", e.Field, e.Value)
}

// ValidationError reports a missing or malformed request parameter. Message
// is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missing(what string) error {
	return &ValidationError{Message: what + " is required"}
}

// check validates in and reports the first failing field as a ValidationError.
func check(v *validator.Validate, in interface{}) error {
	if err := v.Struct(in); err != nil {
		return &ValidationError{Message: validation.First(err)}
	}
	return nil
}
