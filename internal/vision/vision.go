package vision

import (
	"context"
	"errors"
	"image"
)

// Client abstracts a vision backend. One call is one image plus one prompt
// and yields the model's raw textual answer. Implementations perform a
// single attempt; retries, if any, belong to the caller.
type Client interface {
	Name() string
	Complete(ctx context.Context, img image.Image, prompt string) (string, error)
}

// ErrNotConfigured is returned when the provider credential is missing.
var ErrNotConfigured = errors.New("API key not configured")

// ErrOfflineUnavailable is returned by the offline stub for every call.
var ErrOfflineUnavailable = errors.New("offline mode not yet implemented")
