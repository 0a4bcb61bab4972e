// Package common defines shared sentinel errors and the error taxonomy used
// across the Genfit client layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Storage errors.
	ErrStorage    = errors.New("storage error")
	ErrEmptyValue = errors.New("empty value")

	// Network errors.
	ErrNetwork      = errors.New("network error")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoToken  = errors.New("token not found")
	ErrNoUserID = errors.New("user id not found")

	// Domain errors.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError reports a failed read, write or delete against local
// persistent storage.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// ValidationError is a client-side form check failure. Message is the text
// shown to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NetworkError wraps a failed API call. StatusCode is zero when the request
// never produced a response.
type NetworkError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	msg := e.Op
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	switch {
	case e.Message != "":
		msg += ": " + e.Message
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// UserMessage returns the text suitable for an alert: the backend message when
// there is one, the fallback otherwise.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ne *NetworkError
	if errors.As(err, &ne) && ne.Message != "" {
		return ne.Message
	}
	return fallback
}
