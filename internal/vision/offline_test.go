package vision

import (
	"context"
	"errors"
	"image"
	"testing"
)

func TestOfflineClientAlwaysUnavailable(t *testing.T) {
	c := OfflineClient{}
	if c.Name() != "offline" {
		t.Fatalf("unexpected name: %q", c.Name())
	}
	_, err := c.Complete(context.Background(), image.NewRGBA(image.Rect(0, 0, 1, 1)), "anything")
	if !errors.Is(err, ErrOfflineUnavailable) {
		t.Fatalf("expected ErrOfflineUnavailable, got %v", err)
	}
}
