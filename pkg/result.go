package pkg

import (
	"encoding/json"
	"errors"
)

// Payload keys used by the service operations.
const (
	KeyData     = "data"
	KeyID       = "id"
	KeyUser     = "user"
	KeyImported = "imported"
)

// Result is the uniform outcome of every service operation.
//
// On success the payload is published under an operation specific key
// (data, id, user, imported) or omitted entirely. On failure only the error
// message is published. Success is always present.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string

	key string
	err error
}

// OK wraps data published under "data".
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data, key: KeyData}
}

// OKAs wraps data published under key.
func OKAs[T any](key string, data T) Result[T] {
	return Result[T]{Success: true, Data: data, key: key}
}

// Done is a success without payload.
func Done() Result[struct{}] {
	return Result[struct{}]{Success: true}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{Success: false, Error: err.Error(), err: err}
}

// Forward re-types a failed result without rewrapping its error.
func Forward[T, U any](r Result[U]) Result[T] {
	return Result[T]{Success: false, Error: r.Error, err: r.err}
}

// Key returns the payload key, empty when the result carries no payload.
func (r Result[T]) Key() string { return r.key }

// Err returns the error behind a failed result, nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return errors.New(r.Error)
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": r.Success}
	switch {
	case !r.Success:
		out["error"] = r.Error
	case r.key != "":
		out[r.key] = r.Data
	}
	return json.Marshal(out)
}
