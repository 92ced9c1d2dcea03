package adapters

import (
	"context"
	"errors"
	"strings"
)

// Reasons an explanation request can fail.
const (
	ExplainReasonUnavailable = "AI_SERVICE_UNAVAILABLE"
	ExplainReasonRateLimited = "AI_RATE_LIMITED"
	ExplainReasonAuth        = "AI_AUTH_ERROR"
	ExplainReasonTimeout     = "AI_TIMEOUT"
	ExplainReasonEmpty       = "AI_EMPTY_RESPONSE"
	ExplainReasonUnknown     = "AI_UNKNOWN_ERROR"
)

// ExplainError is returned by the explainer when the model call fails.
type ExplainError struct {
	Reason    string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *ExplainError) Error() string {
	return e.Reason + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExplainError) Unwrap() error {
	return e.Err
}

// classifyExplainError maps a model failure to a reason code.
func classifyExplainError(err error) *ExplainError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ExplainError{Reason: ExplainReasonTimeout, Retryable: true, Err: err}
	}

	errStr := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted"):
		return &ExplainError{Reason: ExplainReasonRateLimited, Retryable: true, Err: err}
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "permission denied"):
		return &ExplainError{Reason: ExplainReasonAuth, Retryable: false, Err: err}
	case strings.Contains(errStr, "deadline") || strings.Contains(errStr, "timeout"):
		return &ExplainError{Reason: ExplainReasonTimeout, Retryable: true, Err: err}
	case strings.Contains(errStr, "connection") || strings.Contains(errStr, "dial") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503"):
		return &ExplainError{Reason: ExplainReasonUnavailable, Retryable: true, Err: err}
	case strings.Contains(errStr, "empty response") || strings.Contains(errStr, "no text content"):
		return &ExplainError{Reason: ExplainReasonEmpty, Retryable: true, Err: err}
	}

	return &ExplainError{Reason: ExplainReasonUnknown, Retryable: false, Err: err}
}
