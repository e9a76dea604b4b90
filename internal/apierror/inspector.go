package apierror

import (
	"errors"
	"net"
	"net/http"
	"strings"

	prerrors "github.com/sirseerhq/prsheet/internal/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Inspector provides methods for analyzing remote API errors.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a quota or rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// StatusInspector classifies errors by the HTTP status they carry, falling
// back to message matching for errors that carry none.
type StatusInspector struct{}

// NewInspector creates a new StatusInspector.
func NewInspector() Inspector {
	return &StatusInspector{}
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *StatusInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return true
	}
	if code, ok := statusCode(err); ok {
		return code == http.StatusUnauthorized || code == http.StatusForbidden
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "invalid_grant")
}

// IsNotFoundError checks if the error is a not found error.
func (i *StatusInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := statusCode(err); ok {
		return code == http.StatusNotFound
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found") ||
		strings.Contains(errStr, "unable to parse range") ||
		strings.Contains(errStr, "could not resolve to")
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *StatusInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := statusCode(err); ok {
		return code == http.StatusTooManyRequests
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "quota exceeded")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *StatusInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if code, ok := statusCode(err); ok {
		return code == http.StatusBadGateway ||
			code == http.StatusServiceUnavailable ||
			code == http.StatusGatewayTimeout
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// Kind maps an error to one of prsheet's error kinds. Rate limits are
// checked before auth because quota errors may also carry 403.
func Kind(inspector Inspector, err error) error {
	switch {
	case err == nil:
		return nil
	case inspector.IsRateLimitError(err):
		return prerrors.ErrRateLimit
	case inspector.IsAuthError(err):
		return prerrors.ErrAuth
	case inspector.IsNotFoundError(err):
		return prerrors.ErrNotFound
	case inspector.IsNetworkError(err):
		return prerrors.ErrNetworkFailure
	default:
		return prerrors.ErrRemote
	}
}

func statusCode(err error) (int, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code, true
	}
	return 0, false
}
