package validation

import (
	"errors"
	"fmt"
)

// Rules reported on Error.Rule
const (
	RuleRequired   = "required"
	RuleMaxLength  = "max_length"
	RuleMinLength  = "min_length"
	RuleCharset    = "charset"
	RuleFormat     = "format"
	RuleOneOf      = "one_of"
	RuleRange      = "range"
	RuleCount      = "count"
	RulePaired     = "paired"
	RuleISO8601    = "iso8601"
	RuleRangeOrder = "range_order"
	RuleType       = "type"
)

// ErrInvalid matches every *Error via errors.Is
var ErrInvalid = errors.New("validation failed")

// Error represents a violated field constraint. Error() returns Message
// verbatim so callers can surface it unchanged.
type Error struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Detail renders the error with field, rule and offending value for logs
func (e *Error) Detail() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewError creates a new validation error
func NewError(field string, value interface{}, rule, message string) *Error {
	return &Error{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// First returns the first non-nil error
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// AtIndex prefixes the field of a nested validation error with its list position
func AtIndex(list string, index int, err error) error {
	var verr *Error
	if errors.As(err, &verr) {
		return NewError(fmt.Sprintf("%s[%d].%s", list, index, verr.Field), verr.Value, verr.Rule, verr.Message)
	}
	return err
}

// Nested prefixes the field of a nested validation error with its parent key
func Nested(parent string, err error) error {
	var verr *Error
	if errors.As(err, &verr) {
		return NewError(parent+"."+verr.Field, verr.Value, verr.Rule, verr.Message)
	}
	return err
}
