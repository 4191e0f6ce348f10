package puente

import "fmt"

// UpstreamError indicates the translation capability could not be reached,
// returned a non-success status, or produced an unusable payload. It is never
// cached, so a retry is exactly equivalent to the first attempt.
type UpstreamError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream translation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream translation error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a store operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a request was rejected before any upstream call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FetchError indicates source content could not be retrieved or extracted.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error (%s): %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error (%s): %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
