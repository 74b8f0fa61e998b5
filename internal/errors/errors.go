package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error type mapped to process exit codes.
type Code int

const (
	CodeSuccess              Code = 0
	CodeInternal             Code = 1
	CodeUsage                Code = 2
	CodeAuth                 Code = 10
	CodeNetwork              Code = 11
	CodeMalformed            Code = 12
	CodeContract             Code = 13
	CodeNoMarkets            Code = 14
	CodeResolution           Code = 15
	CodeInsufficientBalance  Code = 16
	CodeInsufficientSupplied Code = 17
	CodePositionNotFound     Code = 18
	CodeQuoteUnavailable     Code = 19
)

// Error is a typed toolkit error that carries a stable error code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	if tErr, ok := As(err); ok {
		return tErr.Code == code
	}
	return false
}

func ExitCode(err error) int {
	if err == nil {
		return int(CodeSuccess)
	}
	if tErr, ok := As(err); ok {
		return int(tErr.Code)
	}
	return int(CodeInternal)
}

// TypeString is the envelope-facing name for an error code.
func TypeString(code Code) string {
	switch code {
	case CodeUsage:
		return "usage_error"
	case CodeAuth:
		return "no_signing_key"
	case CodeNetwork:
		return "network_failure"
	case CodeMalformed:
		return "malformed_response"
	case CodeContract:
		return "contract_error"
	case CodeNoMarkets:
		return "no_markets_available"
	case CodeResolution:
		return "resolution_error"
	case CodeInsufficientBalance:
		return "insufficient_balance"
	case CodeInsufficientSupplied:
		return "insufficient_supplied_balance"
	case CodePositionNotFound:
		return "position_not_found"
	case CodeQuoteUnavailable:
		return "quote_unavailable"
	default:
		return "internal_error"
	}
}
