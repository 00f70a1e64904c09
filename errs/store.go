package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Store & Persistence Errors
var (
	ErrStoreUnavailable = errors.New("document store unavailable")
	ErrStoreQuery       = errors.New("document store query failed")
)

// NewStoreUnavailableError is returned when the store connection handle
// was never established. There is no retry or degraded mode; handlers
// surface this as a hard server failure.
func NewStoreUnavailableError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrStoreUnavailable,
		Details:    "No database connection configured",
	}
}

// NewStoreError wraps a failed store operation with details about what
// was being attempted. Connection-level failures map to 503, everything
// else to a generic 500.
func NewStoreError(operation, collection string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, collection)

	if cause != nil {
		if errors.Is(cause, ErrStoreUnavailable) || strings.Contains(cause.Error(), "connection") {
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStoreUnavailable,
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
