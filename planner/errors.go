package planner

import "fmt"

// ProviderErrorKind classifies completion backend failures.
type ProviderErrorKind string

const (
	KindUnauthenticated   ProviderErrorKind = "unauthenticated"
	KindRateLimited       ProviderErrorKind = "rate_limited"
	KindUnavailable       ProviderErrorKind = "unavailable"
	KindMalformedResponse ProviderErrorKind = "malformed_response"
)

// ProviderError wraps a backend failure with a stable kind so callers can
// branch on it without knowing the SDK's error types. Any ProviderError is
// terminal for the current run; no retries are attempted.
type ProviderError struct {
	Kind ProviderErrorKind
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("completion provider (%s)", e.Kind)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func providerErr(kind ProviderErrorKind, err error) *ProviderError {
	return &ProviderError{Kind: kind, Err: err}
}

// ValidationError reports invalid user input caught before the pipeline runs.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
