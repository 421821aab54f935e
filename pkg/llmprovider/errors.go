package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrEmptyResponse indicates the provider answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrUnknownTransport indicates an unsupported transport name in config
	ErrUnknownTransport = errors.New("unknown transport")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// wrapError tags err with the provider name and marks deadline expiry as ErrProviderTimeout.
func wrapError(ctx context.Context, provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %v", ErrProviderTimeout, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}

func validateRequest(req *Request) error {
	if req == nil || req.Prompt == "" {
		return ErrInvalidRequest
	}
	return nil
}
