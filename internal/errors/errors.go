package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth errors (AUTH-001 to AUTH-099)
	ErrCodeNotAuthenticated ErrorCode = "AUTH-001"
	ErrCodeAuthFailed       ErrorCode = "AUTH-002"
	ErrCodeCredentialsUnset ErrorCode = "AUTH-003"

	// Session storage errors (STORE-001 to STORE-099)
	ErrCodeStoreReadFailed  ErrorCode = "STORE-001"
	ErrCodeStoreWriteFailed ErrorCode = "STORE-002"
	ErrCodeStoreClearFailed ErrorCode = "STORE-003"

	// Gateway errors (GATEWAY-001 to GATEWAY-099)
	ErrCodeGatewayRequest ErrorCode = "GATEWAY-001"
	ErrCodeGatewayStatus  ErrorCode = "GATEWAY-002"
	ErrCodeGatewayDecode  ErrorCode = "GATEWAY-003"

	// Payment input errors (PAY-001 to PAY-099)
	ErrCodePaymentAmount   ErrorCode = "PAY-001"
	ErrCodePaymentCurrency ErrorCode = "PAY-002"
	ErrCodePaymentField    ErrorCode = "PAY-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigHome    ErrorCode = "CONFIG-002"
)

// PayctlError represents an enhanced error with code and recovery suggestions
type PayctlError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PayctlError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PayctlError) Unwrap() error {
	return e.Cause
}

// New creates a new PayctlError
func New(code ErrorCode, message string) *PayctlError {
	return &PayctlError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PayctlError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PayctlError {
	return &PayctlError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PayctlError) WithSuggestion(suggestion string) *PayctlError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PayctlError) WithSuggestions(suggestions ...string) *PayctlError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// CodeOf returns the error code carried by err, or an empty code when err
// does not wrap a PayctlError at any depth.
func CodeOf(err error) ErrorCode {
	var payErr *PayctlError
	if stderrors.As(err, &payErr) {
		return payErr.Code
	}
	return ""
}

// HasCategory reports whether err carries a code in the given category,
// e.g. "STORE" or "AUTH".
func HasCategory(err error, category string) bool {
	code := CodeOf(err)
	return code != "" && strings.HasPrefix(string(code), category+"-")
}

// Common error constructors for frequently used errors

// NewNotAuthenticatedError signals that no usable session token exists.
// This is the expected state before login and after expiry, not a fault.
func NewNotAuthenticatedError() *PayctlError {
	return New(ErrCodeNotAuthenticated, "no valid session").
		WithSuggestion("Run 'payctl auth login' to authenticate with the gateway").
		WithSuggestion("Check 'payctl auth status' to see the current session state")
}

// NewCredentialsUnsetError creates an error for a missing client credential
func NewCredentialsUnsetError(field string) *PayctlError {
	return New(ErrCodeCredentialsUnset, fmt.Sprintf("client credential not provided: %s", field)).
		WithSuggestion(fmt.Sprintf("Set the PAYCTL_%s environment variable", strings.ToUpper(field))).
		WithSuggestion("Or pass the value with the matching --" + strings.ReplaceAll(field, "_", "-") + " flag")
}

// NewStoreWriteError creates a storage write failure error
func NewStoreWriteError(path string, cause error) *PayctlError {
	return Wrap(ErrCodeStoreWriteFailed, fmt.Sprintf("failed to write session file: %s", path), cause).
		WithSuggestion("Check that the directory is writable and the disk is not full").
		WithSuggestion("Override the storage location with PAYCTL_CONFIG_DIR if needed")
}

// NewStoreReadError creates a storage read failure error
func NewStoreReadError(path string, cause error) *PayctlError {
	return Wrap(ErrCodeStoreReadFailed, fmt.Sprintf("failed to read session file: %s", path), cause).
		WithSuggestion("Check the file permissions on the session file").
		WithSuggestion("Remove the file and run 'payctl auth login' again if it is unrecoverable")
}

// NewPaymentAmountError creates an invalid amount error
func NewPaymentAmountError(input string) *PayctlError {
	return New(ErrCodePaymentAmount, fmt.Sprintf("invalid amount: %q", input)).
		WithSuggestion("Amounts use decimal notation with at most two fraction digits, e.g. 12.99").
		WithSuggestion("Amounts must be greater than zero")
}
