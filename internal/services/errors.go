package services

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotConfigured is returned by a Completer that has no credential.
	ErrNotConfigured = errors.New("AI service credential is not configured")

	// ErrEmptyCompletion is returned when the upstream call succeeded but
	// carried no usable text.
	ErrEmptyCompletion = errors.New("no content in AI response")
)

// Custom errors
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

type ConfigurationError struct{ Message string }

func (e *ConfigurationError) Error() string { return e.Message }

// UpstreamError reports a non-2xx answer from the completion backend.
// Body is kept for server-side logs only.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI gateway error: status %d", e.StatusCode)
}

// ErrorKind names the category of err for logs and activity events.
func ErrorKind(err error) string {
	var (
		validationErr *ValidationError
		configErr     *ConfigurationError
		upstreamErr   *UpstreamError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &configErr), errors.Is(err, ErrNotConfigured):
		return "configuration"
	case errors.As(err, &upstreamErr):
		switch upstreamErr.StatusCode {
		case http.StatusTooManyRequests:
			return "rate_limited"
		case http.StatusPaymentRequired:
			return "quota_exhausted"
		}
		return "upstream"
	case errors.Is(err, ErrEmptyCompletion):
		return "empty_result"
	default:
		return "unexpected"
	}
}
