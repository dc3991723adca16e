// Package apperrors defines sentinel errors shared across the engine.
package apperrors

import "errors"

var (
	ErrNoProfile       = errors.New("onboarding profile required")
	ErrNoImage         = errors.New("image payload or URL required")
	ErrUnknownProvider = errors.New("unknown AI provider")
	ErrMissingAPIKey   = errors.New("API key not configured")
)
