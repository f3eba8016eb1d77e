package spoonacular

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or invalid client setting. It is fatal for
// the call that hit it and is never retried or swallowed.
type ConfigError struct {
	Setting string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("spoonacular configuration error: %s: %s", e.Setting, e.Message)
}

// ErrMissingAPIKey is returned by every operation when no API key is configured.
var ErrMissingAPIKey = &ConfigError{
	Setting: "SPOONACULAR_API_KEY",
	Message: "Spoonacular API key is not configured; set SPOONACULAR_API_KEY or SPOONACULAR_API_KEY_FILE",
}

// ErrRateLimited is returned when the upstream answers 402 Payment Required,
// which Spoonacular uses for an exhausted daily quota.
var ErrRateLimited = errors.New("spoonacular API limit reached")

// UpstreamError is any other non-success answer from the upstream API.
type UpstreamError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch from Spoonacular: %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("failed to fetch from Spoonacular: %s", e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("spoonacular request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsConfigError reports whether err carries a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsUnavailable reports whether err is an upstream or network failure.
func IsUnavailable(err error) bool {
	var upstreamErr *UpstreamError
	var networkErr *NetworkError
	return errors.As(err, &upstreamErr) || errors.As(err, &networkErr)
}
