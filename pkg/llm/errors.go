package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrorCode classifies a generation failure.
type ErrorCode string

const (
	// CodeNoContent means the provider returned an empty response.
	CodeNoContent ErrorCode = "NO_CONTENT"
	// CodeParseError means the response contained no parsable JSON.
	CodeParseError ErrorCode = "PARSE_ERROR"
	// CodeValidationError means parsed JSON failed schema validation.
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	// CodeAPIError means the provider call itself failed.
	CodeAPIError ErrorCode = "API_ERROR"
	// CodeUnknownError is the catch-all classification.
	CodeUnknownError ErrorCode = "UNKNOWN_ERROR"
)

// Error is a structured generation error. Retryable is true only for
// transient provider failures (rate limits, 5xx, connection problems);
// parse and validation failures are not retryable by blind re-issue and
// get a corrective prompt instead, which is the caller's policy.
type Error struct {
	Code       ErrorCode
	Message    string
	Retryable  bool
	Cause      error
	StatusCode int    // HTTP status when known
	Model      string // model name when known
}

// Error implements the error interface.
func (e *Error) Error() string {
	parts := []string{string(e.Code)}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	if e.Model != "" {
		parts = append(parts, fmt.Sprintf("model=%s", e.Model))
	}
	parts = append(parts, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable implements the retry.RetryableError interface so the retry
// package can check retryability without importing llm.
func (e *Error) IsRetryable() bool {
	return e.Retryable
}

// NewError creates a structured generation error.
func NewError(code ErrorCode, message string, retryable bool, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Cause:     cause,
	}
}

// ClassifyError categorizes a provider SDK error into a structured *Error.
// Rate limits and 5xx are retryable; auth and bad-request failures are not.
func ClassifyError(err error, model string) *Error {
	if err == nil {
		return nil
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}

	statusCode := 0
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		statusCode = apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		statusCode = reqErr.HTTPStatusCode
	}

	errStr := err.Error()
	lower := strings.ToLower(errStr)
	if statusCode == 0 {
		for _, code := range []int{400, 401, 403, 404, 429, 500, 502, 503, 504} {
			if strings.Contains(errStr, fmt.Sprintf("%d", code)) {
				statusCode = code
				break
			}
		}
	}

	classified := func(message string, retryable bool) *Error {
		return &Error{
			Code:       CodeAPIError,
			Message:    message,
			Retryable:  retryable,
			Cause:      err,
			StatusCode: statusCode,
			Model:      model,
		}
	}

	switch {
	case statusCode == 401 || statusCode == 403 ||
		strings.Contains(lower, "unauthorized") || strings.Contains(lower, "invalid api key"):
		return classified("authentication failed", false)

	case statusCode == 429 || strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "too many requests"):
		return classified("rate limited", true)

	case statusCode >= 500:
		return classified("server error", true)

	case statusCode == 400 || statusCode == 404:
		return classified("bad request", false)

	case strings.Contains(lower, "connection refused") ||
		strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "deadline exceeded"):
		return classified("connection failed", true)
	}

	return &Error{
		Code:       CodeUnknownError,
		Message:    "provider error",
		Retryable:  false,
		Cause:      err,
		StatusCode: statusCode,
		Model:      model,
	}
}

// IsRetryable reports whether err is a retryable generation error.
func IsRetryable(err error) bool {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Retryable
	}
	return false
}

// CodeOf extracts the ErrorCode from an error chain.
func CodeOf(err error) ErrorCode {
	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Code
	}
	return CodeUnknownError
}
