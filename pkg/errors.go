package pkg

import (
	"errors"
	"fmt"
)

// Auth error codes, named after the identity provider vocabulary used by the
// dashboard front-end.
const (
	AuthCodeEmailInUse        = "auth/email-already-in-use"
	AuthCodeWeakPassword      = "auth/weak-password"
	AuthCodeInvalidEmail      = "auth/invalid-email"
	AuthCodeInvalidCredential = "auth/invalid-credential"
	AuthCodeInvalidToken      = "auth/invalid-id-token"
	AuthCodeInternal          = "auth/internal-error"
)

// AuthError reports a rejected credential or an identity provider failure.
type AuthError struct {
	Code string
	Err  error
}

func NewAuthError(code string, err error) *AuthError {
	return &AuthError{Code: code, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Code)
}

func (e *AuthError) Unwrap() error { return e.Err }

// StoreError reports a failed document store call.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func NewStoreError(op, collection, id string, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, ID: id, Err: err}
}

func (e *StoreError) Error() string {
	target := e.Collection
	if e.ID != "" {
		target += "/" + e.ID
	}
	return fmt.Sprintf("%s %s: %v", e.Op, target, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// ValidationError reports a rejected input field. Service operations accept
// schemaless records, so only the HTTP and credential layers produce it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
