package puente

import (
	"errors"
	"testing"
)

func TestUpstreamError(t *testing.T) {
	cause := errors.New("underlying error")
	err := &UpstreamError{Message: "call failed", Cause: cause, Retryable: true}

	if err.Error() != "upstream translation error: call failed: underlying error" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}

	// Without cause
	err2 := &UpstreamError{Message: "empty reply"}
	if err2.Error() != "upstream translation error: empty reply" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestCacheError(t *testing.T) {
	err := &CacheError{Message: "connection failed"}

	if err.Error() != "cache error: connection failed" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "id", Message: "identifier is required"}

	if err.Error() != "validation error: id: identifier is required" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	err2 := &ValidationError{Message: "at least one of title and content is required"}
	if err2.Error() != "validation error: at least one of title and content is required" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestFetchError(t *testing.T) {
	cause := errors.New("timeout")
	err := &FetchError{URL: "https://example.com/p/x", Message: "fetch url", Cause: cause}

	if err.Error() != "fetch error (https://example.com/p/x): fetch url: timeout" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("cause should unwrap")
	}
}
