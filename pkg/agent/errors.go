package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for agent failures.
var (
	ErrNoAPIKey        = errors.New("provider API key not configured")
	ErrEmptyResponse   = errors.New("provider returned no choices")
	ErrRetriesExceeded = errors.New("max retries exceeded")
)

// ProviderError wraps a provider failure with the serialized request so the
// caller can still log what was sent.
type ProviderError struct {
	Provider    string
	Model       string
	Err         error
	FullRequest json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s call failed (model=%s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// isRetryableError classifies transient provider failures: rate limits,
// 5xx server errors, and timeouts.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, indicator := range []string{
		"rate limit", "429",
		"500", "502", "503", "504",
		"timeout", "deadline exceeded",
	} {
		if strings.Contains(msg, indicator) {
			return true
		}
	}
	return false
}
