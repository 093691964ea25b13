package model

import (
	"errors"
	"fmt"
)

// ErrDecode matches every *DecodeError via errors.Is
var ErrDecode = errors.New("decode failed")

// DecodeError represents a wire value that cannot be read into a DTO field
type DecodeError struct {
	Entity  string
	Field   string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Entity, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Entity, e.Field, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new decode error
func NewDecodeError(entity, field, message string, cause error) *DecodeError {
	return &DecodeError{
		Entity:  entity,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
