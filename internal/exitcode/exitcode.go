package exitcode

import (
	"os"
	"strings"

	"github.com/halcyonpay/payctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates a missing session or an authentication failure
	AuthError = 3

	// StorageError indicates the local session slot could not be read or written
	StorageError = 4

	// NetworkError indicates the gateway could not be reached
	NetworkError = 5

	// APIError indicates the gateway rejected a request
	APIError = 6

	// Interrupted indicates the user cancelled the command
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors map directly; anything else falls back to message heuristics.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch code := errors.CodeOf(err); {
	case code == "":
		// fall through to heuristics below
	case errors.HasCategory(err, "AUTH"):
		return AuthError
	case errors.HasCategory(err, "STORE"):
		return StorageError
	case code == errors.ErrCodeGatewayRequest:
		return NetworkError
	case errors.HasCategory(err, "GATEWAY"):
		return APIError
	case errors.HasCategory(err, "PAY"), errors.HasCategory(err, "CONFIG"):
		return UsageError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "not authenticated") {
		return AuthError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "unknown command") ||
		strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown flag") ||
		strings.Contains(errMsg, "is required") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication required or failed"
	case StorageError:
		return "Session storage failure"
	case NetworkError:
		return "Gateway unreachable"
	case APIError:
		return "Gateway rejected the request"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}
