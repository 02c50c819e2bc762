package telephony

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when the provider client cannot be built from configuration.
	ErrConfiguration = errors.New("telephony: invalid provider configuration")

	// ErrProvider wraps every failure of a remote provider call.
	ErrProvider = errors.New("telephony: provider call failed")
)

// ProviderError is a non-2xx response from the provider API.
// Body is kept for logs only and is truncated.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("telephony: provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("telephony: provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error { return ErrProvider }
