// Package enum holds the fixed vocabularies of the Xendit Invoice API.
//
// Every enum is a string type whose value is the canonical wire form.
// Parse functions reject anything outside the declared set with an
// *InvalidValueError.
package enum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue matches every *InvalidValueError via errors.Is
var ErrInvalidValue = errors.New("invalid enum value")

// InvalidValueError is returned when raw input is not a declared variant
type InvalidValueError struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be one of: %s", e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// NewInvalidValueError creates a new invalid value error
func NewInvalidValueError(enum, value string, allowed []string) *InvalidValueError {
	return &InvalidValueError{
		Enum:    enum,
		Value:   value,
		Allowed: allowed,
	}
}

// Strings converts variants to their wire values
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Join renders variants as "A, B, C", the form used in validation messages
func Join[T ~string](values []T) string {
	return strings.Join(Strings(values), ", ")
}

// Contains reports whether v is one of values
func Contains[T ~string](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func parse[T ~string](name, raw string, values []T) (T, error) {
	v := T(raw)
	if Contains(values, v) {
		return v, nil
	}
	var zero T
	return zero, NewInvalidValueError(name, raw, Strings(values))
}

// ParseList parses every element with parseFn, failing on the first bad one
func ParseList[T ~string](raw []string, parseFn func(string) (T, error)) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := parseFn(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
