package cmd

import (
	"errors"
	"fmt"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Error prefixes printed by the invoice command
const (
	PrefixInvalidInput = "[INVALID_INPUT]"
	PrefixAPIError     = "[API_ERROR]"
	PrefixNetworkError = "[NETWORK_ERROR]"
	PrefixUnexpected   = "[UNEXPECTED_ERROR]"
)

// errInvalidInput matches every error caused by what the user typed
var errInvalidInput = errors.New("invalid input")

type userInputError struct {
	msg string
}

func (e *userInputError) Error() string { return e.msg }

func (e *userInputError) Is(target error) bool { return target == errInvalidInput }

func inputError(format string, args ...any) error {
	return &userInputError{msg: fmt.Sprintf(format, args...)}
}

// classify picks the prefix for err
func classify(err error) string {
	// a gateway error can wrap a rule violation found in the reply
	switch {
	case errors.Is(err, gateway.ErrConnectivity):
		return PrefixNetworkError
	case errors.Is(err, gateway.ErrGateway):
		return PrefixAPIError
	case errors.Is(err, errInvalidInput),
		errors.Is(err, validation.ErrInvalid),
		errors.Is(err, enum.ErrInvalidValue),
		errors.Is(err, gateway.ErrInvalidArgument):
		return PrefixInvalidInput
	}
	return PrefixUnexpected
}

// prefixed is err with its classification in front of the message
type prefixed struct {
	prefix string
	err    error
}

func (e *prefixed) Error() string { return e.prefix + " " + e.err.Error() }

func (e *prefixed) Unwrap() error { return e.err }

func withPrefix(err error) error {
	if err == nil {
		return nil
	}
	var p *prefixed
	if errors.As(err, &p) {
		return err
	}
	return &prefixed{prefix: classify(err), err: err}
}
